package tty

// 终端单元格布局（行列坐标，左上角为原点）
type layout struct {
	width, height int

	groundY int // 地面所在行
	hintY   int // 提示行

	blockX, blockY int // 砖块左上角
	charX, charY   int // 角色站立时左上角
	jumpRows       int // 跳跃最高点上移的行数

	buttonX, buttonY int
}

const (
	blockWidth  = 5
	blockHeight = 3
	charWidth   = 3
	charHeight  = 3
	blockGap    = 4 // 砖块底边与角色头顶之间的行数
)

// jumpButtonLabel 地面下方的跳跃按钮
const jumpButtonLabel = "[ Jump! ]"

// computeLayout 根据终端尺寸计算布局
// 终端过小时各元素会被裁剪，但坐标仍然有效
func computeLayout(width, height int) layout {
	l := layout{width: width, height: height}

	l.hintY = height - 1
	l.buttonY = height - 2
	l.groundY = height - 3
	if l.groundY < charHeight {
		l.groundY = charHeight
	}

	l.charY = l.groundY - charHeight
	l.blockY = l.charY - blockGap - blockHeight
	if l.blockY < 0 {
		l.blockY = 0
	}
	l.jumpRows = l.charY - (l.blockY + blockHeight)
	if l.jumpRows < 0 {
		l.jumpRows = 0
	}

	l.blockX = (width - blockWidth) / 2
	l.charX = (width - charWidth) / 2
	l.buttonX = (width - len(jumpButtonLabel)) / 2
	return l
}
