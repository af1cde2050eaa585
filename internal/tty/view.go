package tty

import (
	"math"
	"time"

	"github.com/decker502/coinblock/pkg/easing"
	"github.com/decker502/coinblock/pkg/widget"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleDefault = tcell.StyleDefault
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBlock   = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleChar    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	stylePanel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleTitle   = stylePanel.Foreground(tcell.ColorYellow).Bold(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var characterArt = [charHeight]string{
	" o ",
	"/|\\",
	"/ \\",
}

var blockArt = [blockHeight]string{
	"+---+",
	"| ? |",
	"+---+",
}

// rect 屏幕上的可点击区域
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return r.w > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// View 在终端中绘制角色、砖块和消息浮层，实现 widget.View
type View struct {
	classes   map[widget.Target]map[string]bool
	since     map[widget.Target]time.Duration // 状态类生效的时间点
	overlay   *widget.Overlay
	clock     time.Duration
	jumpTime  time.Duration
	pulseTime time.Duration

	// 最近一次绘制时的可点击区域
	jumpRect  rect
	closeRect rect
}

// NewView 创建终端视图
// jump 和 pulse 是跳跃动画和砖块脉冲的总时长
func NewView(jump, pulse time.Duration) *View {
	return &View{
		classes:   make(map[widget.Target]map[string]bool),
		since:     make(map[widget.Target]time.Duration),
		jumpTime:  jump,
		pulseTime: pulse,
	}
}

// SetClass 实现 widget.View
func (v *View) SetClass(target widget.Target, class string, on bool) {
	if v.classes[target] == nil {
		v.classes[target] = make(map[string]bool)
	}
	if on && !v.classes[target][class] {
		v.since[target] = v.clock
	}
	v.classes[target][class] = on
}

// MountOverlay 实现 widget.View
func (v *View) MountOverlay(o *widget.Overlay) {
	v.overlay = o
}

// UnmountOverlay 实现 widget.View
func (v *View) UnmountOverlay(o *widget.Overlay) {
	if v.overlay == o {
		v.overlay = nil
	}
}

// Has 返回目标上的状态类是否生效
func (v *View) Has(target widget.Target, class string) bool {
	return v.classes[target][class]
}

// Overlay 返回当前挂载的浮层
func (v *View) Overlay() *widget.Overlay {
	return v.overlay
}

// Advance 推进动画时钟
func (v *View) Advance(dt time.Duration) {
	v.clock += dt
}

// jumpOffset 角色当前上移的行数
func (v *View) jumpOffset(maxRows int) int {
	if !v.Has(widget.TargetCharacter, widget.ClassJumping) || v.jumpTime <= 0 {
		return 0
	}
	t := float64(v.clock-v.since[widget.TargetCharacter]) / float64(v.jumpTime)
	arc := easing.EaseArc(t)
	return int(math.Round(arc * float64(maxRows)))
}

// Draw 绘制整个画面
func (v *View) Draw(screen tcell.Screen, muted bool) {
	screen.Clear()
	width, height := screen.Size()
	l := computeLayout(width, height)

	for x := 0; x < width; x++ {
		screen.SetContent(x, l.groundY, '=', nil, styleGround)
	}

	blockY := l.blockY
	blockStyle := styleBlock
	if v.Has(widget.TargetBlock, widget.ClassHit) {
		blockStyle = styleHit
		if blockY > 0 {
			blockY--
		}
	}
	for i, row := range blockArt {
		drawString(screen, l.blockX, blockY+i, row, blockStyle)
	}

	charY := l.charY - v.jumpOffset(l.jumpRows)
	for i, row := range characterArt {
		drawString(screen, l.charX, charY+i, row, styleChar)
	}

	drawString(screen, l.buttonX, l.buttonY, jumpButtonLabel, styleButton)
	v.jumpRect = rect{x: l.buttonX, y: l.buttonY, w: runewidth.StringWidth(jumpButtonLabel), h: 1}

	hint := "[space] jump  [x] close  [m] sound  [q] quit"
	if muted {
		hint += "  (muted)"
	}
	drawString(screen, 0, l.hintY, hint, styleHint)

	v.closeRect = rect{}
	if v.overlay != nil {
		v.drawOverlay(screen, width)
	}

	screen.Show()
}

// drawOverlay 在画面顶部绘制消息面板
func (v *View) drawOverlay(screen tcell.Screen, width int) {
	panelWidth := width - 4
	if panelWidth > 64 {
		panelWidth = 64
	}
	if panelWidth < 12 {
		panelWidth = width
	}
	x0 := (width - panelWidth) / 2
	inner := panelWidth - 4
	closeLabel := "[" + widget.CloseGlyph + "]"
	closeWidth := runewidth.StringWidth(closeLabel)

	var lines []panelLine
	for _, line := range wrapCells(v.overlay.Title, inner-closeWidth-1) {
		lines = append(lines, panelLine{text: line, style: styleTitle})
	}
	for _, item := range v.overlay.Items {
		for i, line := range wrapCells(item, inner-2) {
			prefix := "  "
			if i == 0 {
				prefix = "• "
			}
			lines = append(lines, panelLine{text: prefix + line, style: stylePanel})
		}
	}

	height := len(lines) + 2
	for y := 0; y < height; y++ {
		for x := x0; x < x0+panelWidth; x++ {
			screen.SetContent(x, y, ' ', nil, stylePanel)
		}
	}
	for i, line := range lines {
		drawString(screen, x0+2, 1+i, line.text, line.style)
	}

	closeX := x0 + panelWidth - closeWidth - 1
	drawString(screen, closeX, 0, closeLabel, styleTitle)
	v.closeRect = rect{x: closeX, y: 0, w: closeWidth, h: 1}
}

type panelLine struct {
	text  string
	style tcell.Style
}

// wrapCells 按终端显示宽度换行
func wrapCells(s string, width int) []string {
	return widget.WrapWords(s, float64(width), func(line string) float64 {
		return float64(runewidth.StringWidth(line))
	})
}

// drawString 从 (x, y) 开始写入字符串，超出屏幕的部分被裁剪
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range s {
		if x >= width {
			return
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x += runewidth.RuneWidth(r)
	}
}
