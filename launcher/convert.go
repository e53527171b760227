package launcher

import (
	"github.com/ushitora-anqou/aqpico/config"
	"github.com/ushitora-anqou/aqpico/menu"
	"github.com/ushitora-anqou/aqpico/pong"
)

func MenuConfig(cfg config.MenuConfig, items []string) menu.Config {
	ret := menu.DefaultConfig()
	ret.Items = items
	ret.FontSize = cfg.FontSize
	ret.ScrollTimeout = cfg.ScrollTimeout
	ret.ScrollbarWidth = cfg.ScrollbarWidth
	ret.Palette = menu.Palette{
		Background:          cfg.Background.RGBA(),
		Foreground:          cfg.Foreground.RGBA(),
		Highlight:           cfg.Highlight.RGBA(),
		HighlightForeground: cfg.HighlightForeground.RGBA(),
		Scrollbar:           cfg.Scrollbar.RGBA(),
		ScrollbarBackground: cfg.ScrollbarBackground.RGBA(),
	}
	return ret
}

func PongConfig(cfg config.PongConfig) pong.Config {
	ret := pong.DefaultConfig()
	ret.BallRadius = cfg.BallRadius
	ret.BallSpeed = cfg.BallSpeed
	ret.PaddleFraction = cfg.PaddleFraction
	ret.MoveDelta = cfg.MoveDelta
	ret.Palette = pong.Palette{
		Background: cfg.Background.RGBA(),
		Foreground: cfg.Foreground.RGBA(),
		Prompt:     cfg.Prompt.RGBA(),
	}
	return ret
}
