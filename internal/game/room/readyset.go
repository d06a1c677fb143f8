package room

// ReadySet 已准备玩家的集合，只记录成员关系，无重复
// 不自带锁，由持有房间锁的调用方保护
type ReadySet struct {
	members map[string]struct{}
}

// NewReadySet 创建空集合
func NewReadySet() *ReadySet {
	return &ReadySet{members: make(map[string]struct{})}
}

// Add 添加成员，重复添加无效果
func (s *ReadySet) Add(name string) {
	s.members[name] = struct{}{}
}

// Remove 移除成员，不存在时无效果
func (s *ReadySet) Remove(name string) {
	delete(s.members, name)
}

// Has 是否包含成员
func (s *ReadySet) Has(name string) bool {
	_, ok := s.members[name]
	return ok
}

// Len 成员数量
func (s *ReadySet) Len() int {
	return len(s.members)
}

// Members 返回所有成员
func (s *ReadySet) Members() []string {
	out := make([]string, 0, len(s.members))
	for name := range s.members {
		out = append(out, name)
	}
	return out
}
