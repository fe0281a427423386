package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// BenchProperties 是 primlist 实验程序的配置
type BenchProperties struct {
	Kind            string `cfg:"kind" yaml:"kind" toml:"kind"`
	Elements        int    `cfg:"elements" yaml:"elements" toml:"elements"`
	InitialCapacity int    `cfg:"initial-capacity" yaml:"initial-capacity" toml:"initial-capacity"`
	Rounds          int    `cfg:"rounds" yaml:"rounds" toml:"rounds"`
	PoolIdle        int    `cfg:"pool-idle" yaml:"pool-idle" toml:"pool-idle"`
	Seed            int    `cfg:"seed" yaml:"seed" toml:"seed"`
	LogLevel        string `cfg:"log-level" yaml:"log-level" toml:"log-level"`
	Verify          bool   `cfg:"verify" yaml:"verify" toml:"verify"`
}

var Properties *BenchProperties

func init() {
	Properties = defaultProperties()
}

func defaultProperties() *BenchProperties {
	return &BenchProperties{
		Kind:            "int",
		Elements:        1 << 16,
		InitialCapacity: 0,
		Rounds:          3,
		PoolIdle:        2,
		Seed:            1,
		LogLevel:        "info",
		Verify:          true,
	}
}

// SetupConfigProperties 按扩展名读取配置文件：
// .yaml/.yml 与 .toml 按对应格式解析，其它文件按 "key value" 逐行解析。
// 文件中没有出现的项保持默认值
func SetupConfigProperties(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	p, err := load(file, filepath.Ext(filename))
	if err != nil {
		return errors.Wrapf(err, "load config %s", filename)
	}
	Properties = p
	return nil
}

func load(reader io.Reader, ext string) (*BenchProperties, error) {
	res := defaultProperties()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(reader).Decode(res); err != nil && err != io.EOF {
			return nil, err
		}
	case ".toml":
		if err := toml.NewDecoder(reader).Decode(res); err != nil {
			return nil, err
		}
	default:
		m, err := parse(reader)
		if err != nil {
			return nil, err
		}
		fillProperties(res, m)
	}
	return res, nil
}

func parse(reader io.Reader) (map[string]string, error) {
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.Trim(line[pivot+1:], " ")
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func fillProperties(p *BenchProperties, m map[string]string) {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err == nil {
				fieldVal.SetInt(intV)
			}
		case reflect.Bool:
			boolV := "yes" == val
			fieldVal.SetBool(boolV)
		}
	}
}
