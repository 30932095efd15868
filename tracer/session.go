package tracer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/achilleasa/prism/asset/scene"
	"github.com/achilleasa/prism/log"
	"github.com/chewxy/math32"
)

var (
	ErrNoCamera = errors.New("tracer: scene has no camera")
)

// The per-frame state handed to the GPU before dispatching the tracer.
type Frame struct {
	// Time elapsed since the previous frame.
	Elapsed time.Duration

	Seed       int64
	FrameCount int64
	ViewData   scene.CameraViewData

	// Per-frame buffers with freshly encoded contents, ordered by binding.
	// The buffers are copies and can be uploaded without holding any lock.
	Updates []Buffer
}

// A Session owns the GPU-bound data of a compiled scene and produces the
// per-frame uniform updates.
//
// Scene buffers are encoded once per build and treated as read-only. The
// camera pose and frame counters are the only mutable state; they are
// guarded by a mutex so that input handlers may call SetCamera while the
// render loop calls Frame. Frame snapshots the state under the lock and
// encodes the snapshot after releasing it.
type Session struct {
	logger log.Logger
	opts   Options

	mu      sync.Mutex
	sc      *scene.Scene
	camera  scene.Camera
	clock   *FrameClock
	buffers *BufferSet
}

// Create a new session for a compiled scene.
func NewSession(sc *scene.Scene, opts Options) (*Session, error) {
	s := &Session{
		logger:  log.New("tracer session"),
		opts:    opts,
		clock:   NewFrameClock(opts.MaxAccumulatedFrames),
		buffers: newBufferSet(),
	}

	if err := s.Rebuild(sc); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace the scene data. The camera is reset to the scene camera and frame
// accumulation restarts.
func (s *Session) Rebuild(sc *scene.Scene) error {
	if sc.Camera == nil {
		return ErrNoCamera
	}
	if _, err := sc.Camera.ViewData(); err != nil {
		return err
	}

	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sc = sc
	s.camera = *sc.Camera
	s.buffers.setScene(sc)
	s.clock.ResetAccumulation()

	s.logger.Infof(
		"encoded scene buffers in %d ms (bvh: %d bytes, geometry: %d bytes, materials: %d bytes)",
		time.Since(start).Nanoseconds()/1e6,
		s.buffers.BvhNodes.Size(), s.buffers.Geometry.Size(), s.buffers.Materials.Size(),
	)
	return nil
}

// Update the camera pose. Frame accumulation restarts when the pose changes.
func (s *Session) SetCamera(cam scene.Camera) error {
	if _, err := cam.ViewData(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cam != s.camera {
		s.camera = cam
		s.clock.ResetAccumulation()
	}
	return nil
}

// Get a copy of the current camera pose.
func (s *Session) Camera() scene.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

// Get a snapshot of the buffer set. A later Rebuild does not affect the
// returned set. Buffer contents are shared and must not be modified.
func (s *Session) Buffers() *BufferSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers.clone()
}

// Advance to the frame scheduled at timestamp ts and return the per-frame
// buffer contents.
func (s *Session) Frame(ts time.Duration) (*Frame, error) {
	s.mu.Lock()
	elapsed := s.clock.Tick(ts)
	if s.opts.OrbitSpeed != 0 && elapsed > 0 {
		angle := s.opts.OrbitSpeed * float32(elapsed.Seconds()) * math32.Pi / 180
		if err := s.camera.Orbit(angle); err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("tracer: camera orbit failed: %w", err)
		}
		// The moved camera invalidates accumulated samples; this frame
		// starts a new accumulation run.
		s.clock.ResetAccumulation()
		s.clock.Frames().Up(1)
	}

	// Snapshot mutable state
	cam := s.camera
	seed := s.clock.Seed().Count()
	frameCount := s.clock.Frames().Count()
	seedData := s.clock.Seed().Encode()
	frameData := s.clock.Frames().Encode()
	cameraBuf, seedBuf, frameBuf := *s.buffers.Camera, *s.buffers.Seed, *s.buffers.FrameCount
	s.mu.Unlock()

	vd, err := cam.ViewData()
	if err != nil {
		return nil, err
	}

	cameraBuf.Data = vd.Encode()
	seedBuf.Data = seedData
	frameBuf.Data = frameData

	return &Frame{
		Elapsed:    elapsed,
		Seed:       seed,
		FrameCount: frameCount,
		ViewData:   vd,
		Updates:    []Buffer{cameraBuf, seedBuf, frameBuf},
	}, nil
}
