package widget

// MessageCursor 消息列表上的循环指针
//
// 每次取出一条消息后前进一位，越过末尾后回到 0。
// 重新加载列表时不重置位置；若新列表更短，取用前按新长度取模。
type MessageCursor struct {
	index int
}

// Next 返回当前位置的消息并前进
// 列表为空时返回 false，不做任何索引
func (c *MessageCursor) Next(list MessageList) (Message, bool) {
	if len(list) == 0 {
		return Message{}, false
	}
	if c.index >= len(list) {
		c.index %= len(list)
	}

	msg := list[c.index]
	c.index = (c.index + 1) % len(list)
	return msg, true
}

// Index 返回下一次将要取出的位置
func (c *MessageCursor) Index() int {
	return c.index
}
