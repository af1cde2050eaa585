package widget

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeView 记录控制器对界面的操作
type fakeView struct {
	classes  map[Target]map[string]bool
	mounted  []*Overlay
	mounts   int
	unmounts int
}

func newFakeView() *fakeView {
	return &fakeView{classes: map[Target]map[string]bool{}}
}

func (v *fakeView) SetClass(target Target, class string, on bool) {
	if v.classes[target] == nil {
		v.classes[target] = map[string]bool{}
	}
	v.classes[target][class] = on
}

func (v *fakeView) MountOverlay(o *Overlay) {
	v.mounts++
	v.mounted = append(v.mounted, o)
}

func (v *fakeView) UnmountOverlay(o *Overlay) {
	v.unmounts++
	for i, m := range v.mounted {
		if m == o {
			v.mounted = append(v.mounted[:i], v.mounted[i+1:]...)
			return
		}
	}
}

func (v *fakeView) has(target Target, class string) bool {
	return v.classes[target][class]
}

// fakeSound 记录播放的音效，可模拟播放失败
type fakeSound struct {
	played []string
	err    error
}

func (s *fakeSound) PlaySound(id string) error {
	s.played = append(s.played, id)
	return s.err
}

// failingSource 模拟网络错误
type failingSource struct{}

func (failingSource) Name() string { return "https://example.invalid/messages.json" }

func (failingSource) Fetch(ctx context.Context) ([]byte, error) {
	return nil, errors.New("network unreachable")
}

func testMessages() MessageList {
	return MessageList{
		{Title: "One", Content: []string{"a"}},
		{Title: "Two", Content: []string{"b", "c"}},
		{Title: "Three", Content: []string{}},
	}
}

func newTestController(view View, sound SoundPlayer) *Controller {
	c := NewController(ControllerConfig{View: view, Sound: sound})
	c.SetMessages(testMessages())
	return c
}

// TestNextMessageCycles 验证 N 次调用每条各返回一次，第 N+1 次回到第一条
func TestNextMessageCycles(t *testing.T) {
	for n := 1; n <= 5; n++ {
		list := make(MessageList, n)
		for i := range list {
			list[i] = Message{Title: string(rune('A' + i))}
		}

		c := NewController(ControllerConfig{})
		c.SetMessages(list)

		seen := map[string]int{}
		for i := 0; i < n; i++ {
			msg, ok := c.NextMessage()
			if !ok {
				t.Fatalf("n=%d: NextMessage returned none at call %d", n, i)
			}
			if msg.Title != list[i].Title {
				t.Errorf("n=%d: call %d got %q, want %q", n, i, msg.Title, list[i].Title)
			}
			seen[msg.Title]++
		}
		for _, m := range list {
			if seen[m.Title] != 1 {
				t.Errorf("n=%d: message %q returned %d times, want 1", n, m.Title, seen[m.Title])
			}
		}

		msg, _ := c.NextMessage()
		if msg.Title != list[0].Title {
			t.Errorf("n=%d: wrap returned %q, want %q", n, msg.Title, list[0].Title)
		}
	}
}

// TestNextMessageEmpty 验证空列表返回 none 且不 panic
func TestNextMessageEmpty(t *testing.T) {
	c := NewController(ControllerConfig{})

	msg, ok := c.NextMessage()
	if ok {
		t.Errorf("Expected no message from empty list, got %+v", msg)
	}
	if c.Cursor() != 0 {
		t.Errorf("Cursor moved on empty list: %d", c.Cursor())
	}
}

// TestCursorSurvivesReload 验证重新加载不重置指针，且更短的列表不会越界
func TestCursorSurvivesReload(t *testing.T) {
	c := newTestController(nil, nil)
	c.NextMessage()
	c.NextMessage()

	if c.Cursor() != 2 {
		t.Fatalf("Cursor: got %d, want 2", c.Cursor())
	}

	c.SetMessages(testMessages())
	if c.Cursor() != 2 {
		t.Errorf("Cursor reset on reload: got %d, want 2", c.Cursor())
	}

	c.SetMessages(MessageList{{Title: "X"}, {Title: "Y"}})
	msg, ok := c.NextMessage()
	if !ok || msg.Title != "X" {
		t.Errorf("After shrink: got %q (ok=%v), want X", msg.Title, ok)
	}
}

// TestTriggerJumpSequence 验证跳跃序列的 400/800/500ms 时序
func TestTriggerJumpSequence(t *testing.T) {
	view := newFakeView()
	sound := &fakeSound{}
	c := newTestController(view, sound)
	s := c.Scheduler()

	if !c.TriggerJump() {
		t.Fatal("TriggerJump should start a jump")
	}
	if !c.IsJumping() || !view.has(TargetCharacter, ClassJumping) {
		t.Fatal("Character should be jumping right after trigger")
	}
	if len(sound.played) != 1 || sound.played[0] != SoundJump {
		t.Errorf("Expected jump sound, got %v", sound.played)
	}
	if s.Pending() != 2 {
		t.Errorf("Expected 2 pending timers, got %d", s.Pending())
	}

	s.Advance(399 * time.Millisecond)
	if c.ActiveOverlay() != nil {
		t.Error("Hit effect fired before 400ms")
	}

	s.Advance(1 * time.Millisecond)
	if !view.has(TargetBlock, ClassHit) {
		t.Error("Block should be hit at 400ms")
	}
	if c.ActiveOverlay() == nil || c.ActiveOverlay().Title != "One" {
		t.Errorf("Expected overlay for first message, got %+v", c.ActiveOverlay())
	}
	if len(sound.played) != 2 || sound.played[1] != SoundCoin {
		t.Errorf("Expected coin sound after hit, got %v", sound.played)
	}

	s.Advance(400 * time.Millisecond) // 800ms
	if c.IsJumping() || view.has(TargetCharacter, ClassJumping) {
		t.Error("Jump should reset at 800ms")
	}
	if !view.has(TargetBlock, ClassHit) {
		t.Error("Block pulse should last until 900ms")
	}

	s.Advance(100 * time.Millisecond) // 900ms
	if view.has(TargetBlock, ClassHit) {
		t.Error("Block pulse should reset at 900ms")
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", s.Pending())
	}
}

// TestTriggerJumpWhileJumping 验证跳跃中再次触发为空操作
func TestTriggerJumpWhileJumping(t *testing.T) {
	view := newFakeView()
	sound := &fakeSound{}
	c := newTestController(view, sound)

	c.TriggerJump()
	pending := c.Scheduler().Pending()
	played := len(sound.played)

	if c.TriggerJump() {
		t.Error("Second TriggerJump should be a no-op")
	}
	if c.Scheduler().Pending() != pending {
		t.Errorf("Pending timers changed: got %d, want %d", c.Scheduler().Pending(), pending)
	}
	if len(sound.played) != played {
		t.Error("No sound should play for an ignored jump")
	}
	if !c.IsJumping() {
		t.Error("State should stay jumping")
	}

	c.Scheduler().Advance(800 * time.Millisecond)
	if !c.TriggerJump() {
		t.Error("Jump should be allowed again after reset")
	}
}

// TestTriggerJumpEmptyOrNoView 验证列表为空或缺少界面时为空操作
func TestTriggerJumpEmptyOrNoView(t *testing.T) {
	c := NewController(ControllerConfig{View: newFakeView()})
	if c.TriggerJump() {
		t.Error("TriggerJump should be a no-op with an empty list")
	}

	c = newTestController(nil, nil)
	if c.TriggerJump() || c.IsJumping() {
		t.Error("TriggerJump should be a no-op without a view")
	}
	if c.Scheduler().Pending() != 0 {
		t.Error("No timers should be scheduled")
	}
}

// TestSoundFailureIgnored 验证音效失败不影响时序
func TestSoundFailureIgnored(t *testing.T) {
	view := newFakeView()
	c := newTestController(view, &fakeSound{err: errors.New("autoplay blocked")})

	if !c.TriggerJump() {
		t.Fatal("Jump should start even when audio fails")
	}
	c.Scheduler().Advance(400 * time.Millisecond)
	if c.ActiveOverlay() == nil {
		t.Error("Overlay should appear even when audio fails")
	}
}

// TestShowMessageTwice 验证连续显示两次只保留一个浮层
func TestShowMessageTwice(t *testing.T) {
	view := newFakeView()
	c := newTestController(view, nil)

	c.ShowMessage(Message{Title: "First", Content: []string{"1"}})
	c.ShowMessage(Message{Title: "Second", Content: []string{"2", "<x>"}})

	if len(view.mounted) != 1 {
		t.Fatalf("Expected exactly one overlay, got %d", len(view.mounted))
	}
	o := view.mounted[0]
	if o != c.ActiveOverlay() {
		t.Error("Mounted overlay should be the active one")
	}
	if o.Title != "Second" || len(o.Items) != 2 || o.Items[1] != "<x>" {
		t.Errorf("Overlay content mismatch: %+v", o)
	}
	want := `<h3>Second</h3><ul><li>2</li><li>&lt;x&gt;</li></ul><button class="close-btn">✕</button>`
	if o.Markup != want {
		t.Errorf("Markup:\n got %s\nwant %s", o.Markup, want)
	}
}

// TestCloseMessage 验证关闭浮层，且不影响进行中的跳跃
func TestCloseMessage(t *testing.T) {
	view := newFakeView()
	c := newTestController(view, nil)

	c.CloseMessage() // 没有浮层时为空操作
	if view.unmounts != 0 {
		t.Error("CloseMessage without overlay should not unmount")
	}

	c.TriggerJump()
	c.Scheduler().Advance(400 * time.Millisecond)
	c.CloseMessage()

	if c.ActiveOverlay() != nil || len(view.mounted) != 0 {
		t.Error("Overlay should be removed")
	}
	if !c.IsJumping() || c.Scheduler().Pending() != 2 {
		t.Errorf("Pending timers should survive close: jumping=%v pending=%d", c.IsJumping(), c.Scheduler().Pending())
	}

	c.Scheduler().Advance(500 * time.Millisecond)
	if c.IsJumping() || view.has(TargetBlock, ClassHit) {
		t.Error("Timers should still reset state after close")
	}
}

// TestLoadFailureFallback 验证加载失败时列表为唯一的兜底消息
func TestLoadFailureFallback(t *testing.T) {
	c := NewController(ControllerConfig{Source: failingSource{}})
	c.Load(context.Background())

	list := c.Messages()
	if len(list) != 1 {
		t.Fatalf("Expected 1 fallback message, got %d", len(list))
	}
	if list[0].Title != "Error" {
		t.Errorf("Fallback title: got %q, want Error", list[0].Title)
	}
}

// TestControllerUpdate 验证 Update 以秒为单位推进时钟
func TestControllerUpdate(t *testing.T) {
	view := newFakeView()
	c := newTestController(view, nil)
	c.TriggerJump()

	for i := 0; i < 30; i++ {
		c.Update(1.0 / 60.0)
	}
	if c.ActiveOverlay() == nil {
		t.Error("Hit effect should have fired within 30 frames")
	}
	for i := 0; i < 30; i++ {
		c.Update(1.0 / 60.0)
	}
	if c.IsJumping() {
		t.Error("Jump should have reset within 60 frames")
	}
}

// TestTriggerJumpSingleLongStep 一次推进越过整个序列时，脉冲仍在 900ms 结束
func TestTriggerJumpSingleLongStep(t *testing.T) {
	view := newFakeView()
	c := newTestController(view, nil)
	c.TriggerJump()

	c.Scheduler().Advance(1000 * time.Millisecond)
	if view.has(TargetBlock, ClassHit) {
		t.Error("Block pulse should be cleared after 1000ms")
	}
	if c.IsJumping() {
		t.Error("Jump should be reset after 1000ms")
	}
	if c.ActiveOverlay() == nil {
		t.Error("Hit effect should have shown a message")
	}
	if delays := c.Scheduler().PendingDelays(); len(delays) != 0 {
		t.Errorf("Expected no pending timers, got %v", delays)
	}
}

// TestControllerUpdateFrameExact 60fps 下第 24 帧顶中砖块，第 48 帧落地
func TestControllerUpdateFrameExact(t *testing.T) {
	view := newFakeView()
	c := newTestController(view, nil)
	c.TriggerJump()

	for i := 0; i < 23; i++ {
		c.Update(1.0 / 60.0)
	}
	if c.ActiveOverlay() != nil {
		t.Fatal("Hit effect fired before frame 24")
	}
	c.Update(1.0 / 60.0)
	if c.ActiveOverlay() == nil {
		t.Errorf("Hit effect should fire on frame 24, clock=%v", c.Scheduler().Now())
	}

	for i := 24; i < 47; i++ {
		c.Update(1.0 / 60.0)
	}
	if !c.IsJumping() {
		t.Fatal("Jump reset before frame 48")
	}
	c.Update(1.0 / 60.0)
	if c.IsJumping() {
		t.Errorf("Jump should reset on frame 48, clock=%v", c.Scheduler().Now())
	}
}

func TestHandleKey(t *testing.T) {
	view := newFakeView()
	c := newTestController(view, nil)

	if c.HandleKey(KeyClose) {
		t.Error("Close key without overlay should not be consumed")
	}

	if !c.HandleKey(KeyJump) || !c.IsJumping() {
		t.Fatal("Jump key should start a jump")
	}
	// 跳跃中再次按下仍被消费，但不会重新起跳
	if !c.HandleKey(KeyJump) {
		t.Error("Jump key should always be consumed")
	}
	if got := c.Scheduler().Pending(); got != 2 {
		t.Errorf("Pending tasks: got %d, want 2", got)
	}

	c.Update(0.4)
	if c.ActiveOverlay() == nil {
		t.Fatal("Overlay should be shown after hit")
	}
	if !c.HandleKey(KeyClose) || c.ActiveOverlay() != nil {
		t.Error("Close key should dismiss the overlay")
	}
}
