package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"primcoll/datastruct/list"
	"primcoll/interface/collection"
	"primcoll/lib/logger"
)

type scenario struct {
	name string
	run  func() error
}

var scenarios = []scenario{
	{"contains and remove all", containsAndRemoveAll},
	{"insert positions", insertPositions},
	{"remove first occurrence then optimize", removeThenOptimize},
	{"cursor remove", cursorRemove},
	{"frozen list rejects mutation", frozenRejectsMutation},
	{"view aliasing", viewAliasing},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Run the reference scenarios and report each outcome",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runScenarios()
	},
}

func runScenarios() error {
	failed := 0
	for _, s := range scenarios {
		if err := s.run(); err != nil {
			failed++
			logger.Error("scenario failed", "name", s.name, "err", err)
			continue
		}
		logger.Info("scenario passed", "name", s.name)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	return nil
}

func expectList[T collection.Scalar](l collection.List[T], expected ...T) error {
	if !l.Equals(expected) {
		return errors.Errorf("got %v, expected %v", l, expected)
	}
	return nil
}

func containsAndRemoveAll() error {
	l := list.NewArrayListOf[int32](2, 3, 4, 5)
	if !l.ContainsAll([]int32{3, 4}) {
		return errors.New("expected to contain 3 and 4")
	}
	if l.ContainsAll([]int32{0, 1}) {
		return errors.New("expected not to contain 0 and 1")
	}
	if _, err := l.RemoveAll([]int32{3, 4, 5}); err != nil {
		return err
	}
	return expectList[int32](l, 2)
}

func insertPositions() error {
	l := list.NewArrayList[int64]()
	if err := l.Insert(0, 7); err != nil {
		return err
	}
	if err := expectList[int64](l, 7); err != nil {
		return err
	}
	if err := l.Insert(2, 8); !errors.Is(err, collection.ErrIndexOutOfBounds) {
		return errors.Errorf("insert at 2: got %v, expected index out of bounds", err)
	}
	return nil
}

func removeThenOptimize() error {
	l := list.NewArrayListOf(false, true, false)
	changed, err := l.Remove(true)
	if err != nil {
		return err
	}
	if !changed {
		return errors.New("remove reported no change")
	}
	if err := expectList[bool](l, false, false); err != nil {
		return err
	}
	l.Optimize()
	if l.Capacity() != 2 {
		return errors.Errorf("capacity %d after optimize, expected 2", l.Capacity())
	}
	return nil
}

func cursorRemove() error {
	l := list.NewArrayListOf[int16](1, 2, 3)
	it := l.ListIterator()
	if _, err := it.Next(); err != nil {
		return err
	}
	if err := it.Remove(); err != nil {
		return err
	}
	if err := expectList[int16](l, 2, 3); err != nil {
		return err
	}
	if err := it.Remove(); !errors.Is(err, collection.ErrIllegalState) {
		return errors.Errorf("second remove: got %v, expected illegal state", err)
	}
	return nil
}

func frozenRejectsMutation() error {
	frozen := list.NewArrayListOf[float64](1.5, 2.5).Freeze()
	if err := frozen.Add(3.5); !errors.Is(err, collection.ErrUnsupportedOperation) {
		return errors.Errorf("add: got %v, expected unsupported operation", err)
	}
	return expectList[float64](frozen, 1.5, 2.5)
}

func viewAliasing() error {
	l := list.NewArrayListOf[uint16]('a', 'b', 'c', 'd')
	view, err := l.SubList(1, 3)
	if err != nil {
		return err
	}
	if _, err := view.Set(0, 'x'); err != nil {
		return err
	}
	if err := view.Add('y'); err != nil {
		return err
	}
	return expectList[uint16](l, 'a', 'x', 'c', 'y', 'd')
}
