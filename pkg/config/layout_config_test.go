package config

import (
	"testing"
)

// TestCharacterReachesBlock 跳跃最高点时角色头顶恰好碰到砖块底边
func TestCharacterReachesBlock(t *testing.T) {
	apexTop := CharacterY - JumpHeight
	if apexTop != BlockY+BlockSize {
		t.Errorf("Apex top = %.1f, want block bottom %.1f", apexTop, BlockY+BlockSize)
	}
	if JumpHeight <= 0 {
		t.Errorf("JumpHeight should be positive, got %.1f", JumpHeight)
	}
}

// TestLayoutCentered 角色、砖块和按钮水平居中
func TestLayoutCentered(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		width float64
	}{
		{"砖块", BlockX, BlockSize},
		{"角色", CharacterX, CharacterWidth},
		{"跳跃按钮", JumpButtonX, JumpButtonWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := tt.x + tt.width/2
			if center != WidgetScreenWidth/2.0 {
				t.Errorf("center = %.1f, want %.1f", center, WidgetScreenWidth/2.0)
			}
		})
	}
}

func TestLayoutFitsScreen(t *testing.T) {
	if JumpButtonY+JumpButtonHeight > WidgetScreenHeight {
		t.Errorf("Jump button bottom %.1f exceeds screen height", JumpButtonY+JumpButtonHeight)
	}
	if PanelWidth() != WidgetScreenWidth-2*PanelMargin || PanelWidth() <= 0 {
		t.Errorf("PanelWidth() = %.1f", PanelWidth())
	}
}
