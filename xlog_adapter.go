// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import (
	"github.com/actforgood/xlog"
)

// LogLevelProvider provides a level read from a Properties map.
// It can be used to configure log level for a xlog.Logger.
// If the level key is not found, the default provided level is returned.
func LogLevelProvider(
	props Properties,
	lvlKey string,
	defaultLvl string,
	levelLabels map[xlog.Level]string,
) xlog.LevelProvider {
	labeledLevels := flipLevelLabels(levelLabels)
	lvl := props.Get(lvlKey, defaultLvl).(string)

	return func() xlog.Level {
		return labeledLevels[lvl]
	}
}

// flipLevelLabels flips level labels map.
func flipLevelLabels(levelLabels map[xlog.Level]string) map[string]xlog.Level {
	flippedLevelLabels := make(map[string]xlog.Level, len(levelLabels))
	for lvl, label := range levelLabels {
		flippedLevelLabels[label] = lvl
	}

	return flippedLevelLabels
}

// LogErrorHandler is a handler which can be used in a PropertyMapLoader
// as an error handler (see [WithErrorHandler]). It logs the error with a xlog.Logger.
// Passed parameter is a function that returns the logger (this way the logger
// can be instantiated later, maybe configured from the very same properties).
func LogErrorHandler(loggerGetter func() xlog.Logger) func(error) {
	return func(err error) {
		loggerGetter().Error(
			xlog.MessageKey, "[xprops] could not load properties",
			xlog.ErrorKey, xlog.StackErr(err),
		)
	}
}
