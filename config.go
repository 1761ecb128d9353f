package top2bottom

import (
	"sync"

	"github.com/riverfjs/top2bottom-go/internal/types"
)

// 导出类型别名
type Config = types.Config

// DefaultColumn is the column width used when none is configured.
const DefaultColumn = types.DefaultColumn

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
// Callers must not modify the returned value.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}
