package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"primcoll/config"
	"primcoll/datastruct/list"
	"primcoll/interface/collection"
	"primcoll/lib/boxed"
	"primcoll/lib/logger"
	"primcoll/lib/utils"
)

var (
	benchKind     string
	benchElements int

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Append random values and report growth behaviour",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := *config.Properties
			if cmd.Flags().Changed("kind") {
				p.Kind = benchKind
			}
			if cmd.Flags().Changed("elements") {
				p.Elements = benchElements
			}
			return bench(cmd.Context(), &p)
		},
	}
)

func init() {
	benchCmd.Flags().StringVar(&benchKind, "kind", "int", "scalar kind: boolean, byte, char, short, int, long, float, double")
	benchCmd.Flags().IntVarP(&benchElements, "elements", "n", 0, "number of values appended per round")
}

func bench(ctx context.Context, p *config.BenchProperties) error {
	if ctx == nil {
		ctx = context.Background()
	}
	kind, err := boxed.ParseKind(p.Kind)
	if err != nil {
		return err
	}
	switch kind {
	case boxed.Boolean:
		return runBench[bool](ctx, p)
	case boxed.Byte:
		return runBench[int8](ctx, p)
	case boxed.Char:
		return runBench[uint16](ctx, p)
	case boxed.Short:
		return runBench[int16](ctx, p)
	case boxed.Int:
		return runBench[int32](ctx, p)
	case boxed.Long:
		return runBench[int64](ctx, p)
	case boxed.Float:
		return runBench[float32](ctx, p)
	case boxed.Double:
		return runBench[float64](ctx, p)
	}
	return errors.Errorf("unsupported kind %s", kind)
}

func runBench[T collection.Scalar](ctx context.Context, p *config.BenchProperties) error {
	kind := boxed.KindOf[T]()
	pool := list.NewPool[T](ctx, p.InitialCapacity, p.PoolIdle)
	defer pool.Close(ctx)
	r := rand.New(rand.NewSource(int64(p.Seed)))
	for round := 0; round < p.Rounds; round++ {
		l, err := pool.Borrow(ctx)
		if err != nil {
			return err
		}
		values := utils.RandomScalars[T](r, p.Elements)
		initial := l.Capacity()
		reallocations, last := 0, initial
		start := time.Now()
		for _, v := range values {
			_ = l.Add(v)
			if c := l.Capacity(); c != last {
				reallocations++
				last = c
			}
		}
		logger.Info("appended",
			"round", round,
			"kind", kind,
			"size", l.Size(),
			"initial", initial,
			"capacity", l.Capacity(),
			"reallocations", reallocations,
			"elapsed", time.Since(start),
		)
		if p.Verify {
			if err := verify(l, values); err != nil {
				return errors.Wrapf(err, "verify round %d", round)
			}
			logger.Debugf("round %d verified", round)
		}
		if err := pool.Return(ctx, l); err != nil {
			return err
		}
	}
	logger.Info("bench done", "kind", kind, "rounds", p.Rounds, "idle", pool.Idle())
	return nil
}

// verify 用游标正反各遍历一次，并检查区间复制和哈希
func verify[T collection.Scalar](l *list.ArrayList[T], values []T) error {
	if l.Size() != len(values) {
		return errors.Errorf("size %d, expected %d", l.Size(), len(values))
	}
	it := l.ListIterator()
	for i := 0; it.HasNext(); i++ {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if !boxed.Equal(v, values[i]) {
			return errors.Errorf("forward %d: got %s, expected %s", i, boxed.Format(v), boxed.Format(values[i]))
		}
	}
	for i := len(values) - 1; it.HasPrevious(); i-- {
		v, err := it.Previous()
		if err != nil {
			return err
		}
		if !boxed.Equal(v, values[i]) {
			return errors.Errorf("backward %d: got %s, expected %s", i, boxed.Format(v), boxed.Format(values[i]))
		}
	}
	from, to := len(values)/4, len(values)/2
	part, err := l.ToArrayRange(from, to)
	if err != nil {
		return err
	}
	for k, v := range part {
		if !boxed.Equal(v, values[from+k]) {
			return errors.Errorf("range copy %d mismatched", from+k)
		}
	}
	if l.HashCode() != list.ImmutableOf(values...).HashCode() {
		return errors.New("hash code mismatch")
	}
	return nil
}
