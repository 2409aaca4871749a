// internal/config/watch.go
package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Watch re-decodes the config file whenever it is written and passes the new
// settings to onChange. Invalid files are logged and skipped. onChange runs on
// viper's watcher goroutine, so it must hand the value off rather than touch
// a scene directly.
func Watch(v *viper.Viper, logger *zap.Logger, onChange func(*Settings)) {
	if v == nil || v.ConfigFileUsed() == "" {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		s, err := decode(v)
		if err != nil {
			logger.Warn("config reload rejected", zap.String("file", e.Name), zap.Error(err))
			return
		}
		logger.Info("config reloaded", zap.String("file", e.Name))
		onChange(s)
	})
	v.WatchConfig()
}
