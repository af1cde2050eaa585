package scenes

import (
	"github.com/decker502/coinblock/pkg/game"
)

// Scene 场景接口，LoadingScene 和 WidgetScene 都交给 game.SceneManager 切换
type Scene = game.Scene

var (
	_ Scene         = (*LoadingScene)(nil)
	_ Scene         = (*WidgetScene)(nil)
	_ game.Saveable = (*WidgetScene)(nil)
)
