package system

import (
	"image"
	"sync"
)

// FramePool recycles RGBA frame buffers between storyboard renders so
// sustained rendering does not churn the garbage collector.
type FramePool struct {
	mu    sync.RWMutex
	pools map[string]*sync.Pool
}

var frames = &FramePool{pools: make(map[string]*sync.Pool)}

// AcquireFrame returns a frame buffer of the given size, reusing a
// released one when possible. The pixel contents are undefined; the
// caller is expected to overwrite the whole frame.
func AcquireFrame(rect image.Rectangle) *image.RGBA {
	return frames.acquire(rect)
}

// ReleaseFrame hands a frame buffer back for reuse.
func ReleaseFrame(img *image.RGBA) {
	frames.release(img)
}

func (p *FramePool) acquire(rect image.Rectangle) *image.RGBA {
	key := rect.String()
	p.mu.RLock()
	pool, ok := p.pools[key]
	p.mu.RUnlock()

	if !ok {
		p.mu.Lock()
		// Double check
		pool, ok = p.pools[key]
		if !ok {
			pool = &sync.Pool{
				New: func() interface{} {
					return image.NewRGBA(rect)
				},
			}
			p.pools[key] = pool
		}
		p.mu.Unlock()
	}

	return pool.Get().(*image.RGBA)
}

func (p *FramePool) release(img *image.RGBA) {
	if img == nil {
		return
	}
	key := img.Rect.String()
	p.mu.RLock()
	pool, ok := p.pools[key]
	p.mu.RUnlock()

	if ok {
		pool.Put(img)
	}
}
