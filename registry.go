package top2bottom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
)

// Name is the registry key of the vertical-text extension.
const Name = "top2bottom"

// optionColumn 唯一支持的配置项
const optionColumn = "column"

// ExtensionFactory builds a configured extension from string settings.
type ExtensionFactory func(settings map[string]string) (goldmark.Extender, error)

var extensionRegistry = map[string]ExtensionFactory{
	Name: MakeExtension,
}

// MakeExtension 根据字符串配置构造扩展
//
// 只接受 "column"；空值回退到默认列宽，未知配置项返回错误。
func MakeExtension(settings map[string]string) (goldmark.Extender, error) {
	opts := make([]Option, 0, len(settings))
	for key, value := range settings {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case optionColumn:
			if strings.TrimSpace(value) == "" {
				Logger.Warn("empty column width, using default", "default", DefaultColumn)
				continue
			}
			opts = append(opts, WithColumn(strings.TrimSpace(value)))
		default:
			return nil, fmt.Errorf("%s: unknown config option %q", Name, key)
		}
	}
	return New(opts...), nil
}

// Lookup resolves an extension by registry name and configures it.
func Lookup(name string, settings map[string]string) (goldmark.Extender, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	factory, ok := extensionRegistry[key]
	if !ok {
		return nil, fmt.Errorf("unknown extension %q", name)
	}
	ext, err := factory(settings)
	if err != nil {
		return nil, fmt.Errorf("configure %s: %w", key, err)
	}
	return ext, nil
}

// Names returns the registered extension names in sorted order.
func Names() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
