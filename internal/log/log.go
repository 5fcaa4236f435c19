package log

import (
	"io/ioutil"
	"sync"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var (
	std  *logrus.Logger
	once sync.Once
)

// New 创建带前缀格式的日志句柄
func New(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)

	formatter := new(prefixed.TextFormatter)
	formatter.FullTimestamp = true
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.SetColorScheme(&prefixed.ColorScheme{
		PrefixStyle:    "white+h",
		TimestampStyle: "black+h"})
	l.SetFormatter(formatter)

	return l
}

// Default 进程内共享的日志句柄, 第一次调用时创建
func Default() *logrus.Logger {
	once.Do(func() {
		std = New(logrus.InfoLevel)
	})

	return std
}

// Discard 丢弃所有输出, 测试用
func Discard() *logrus.Logger {
	l := logrus.New()
	l.Out = ioutil.Discard

	return l
}

// Prefixed 返回带 prefix 字段的 entry, prefixed formatter 会把它放在消息前面
func Prefixed(l logrus.FieldLogger, prefix string) *logrus.Entry {
	return l.WithField("prefix", prefix)
}
