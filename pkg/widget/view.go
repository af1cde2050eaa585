package widget

// Target 控制器能够切换状态类的界面元素
type Target int

const (
	// TargetCharacter 角色精灵
	TargetCharacter Target = iota
	// TargetBlock 被顶的砖块
	TargetBlock
)

// String 返回元素名称（用于日志）
func (t Target) String() string {
	switch t {
	case TargetCharacter:
		return "character"
	case TargetBlock:
		return "block"
	default:
		return "unknown"
	}
}

// 状态类名
const (
	ClassJumping = "jumping" // 角色跳跃中
	ClassHit     = "hit"     // 砖块被顶中
)

// View 控制器驱动的界面边界
//
// 前端负责把状态类映射为动画、把浮层挂载为可见面板。
type View interface {
	// SetClass 在目标元素上添加（on=true）或移除状态类
	SetClass(target Target, class string, on bool)
	// MountOverlay 显示浮层
	MountOverlay(o *Overlay)
	// UnmountOverlay 移除浮层
	UnmountOverlay(o *Overlay)
}

// SoundPlayer 一次性音效的播放边界
// 返回的错误只会被记录，不影响动画时序
type SoundPlayer interface {
	PlaySound(id string) error
}

// 音效资源ID
const (
	SoundJump = "SOUND_JUMP"
	SoundCoin = "SOUND_COIN"
)

// Key 前端转发给控制器的按键
type Key int

const (
	// KeyJump 跳跃键（空格、回车）
	KeyJump Key = iota
	// KeyClose 关闭浮层（Esc）
	KeyClose
)
