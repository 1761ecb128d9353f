package top2bottom

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger 全局日志记录器，默认只输出警告及以上
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "top2bottom",
	Level:  log.WarnLevel,
})

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}
