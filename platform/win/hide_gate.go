package win

import (
	"sync/atomic"
	"time"
)

// showGrace 托盘“显示”之后不再因最小化而隐藏的时长
const showGrace = 2 * time.Second

// hideGate 记录自动隐藏被挡住的截止时间，可在托盘回调与轮询协程之间共享
type hideGate struct {
	until atomic.Int64
	now   func() time.Time
}

func newHideGate(now func() time.Time) *hideGate {
	return &hideGate{now: now}
}

// Hold 从现在起 d 时间内挡住自动隐藏；d <= 0 立即放开
func (g *hideGate) Hold(d time.Duration) {
	g.until.Store(g.now().Add(d).UnixNano())
}

// Open 是否允许自动隐藏
func (g *hideGate) Open() bool {
	return g.now().UnixNano() >= g.until.Load()
}

var minimizeGate = newHideGate(time.Now)
