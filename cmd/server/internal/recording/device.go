package recording

import (
	"fmt"
	"math"
	"sync"

	"github.com/gen2brain/malgo"
)

// Device is a mono float32 audio source. Start begins delivering sample
// batches to onSamples from the capture thread until Stop is called.
type Device interface {
	Start(onSamples func([]float32)) error
	Stop() error
}

// MicDevice captures from the default system microphone via miniaudio.
type MicDevice struct {
	sampleRate int

	ctx    *malgo.AllocatedContext
	device *malgo.Device
}

func NewMicDevice(sampleRate int) *MicDevice {
	return &MicDevice{sampleRate: sampleRate}
}

func (d *MicDevice) Start(onSamples func([]float32)) error {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("failed to init audio context: %w", err)
	}
	d.ctx = ctx

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatF32
	deviceConfig.Capture.Channels = 1
	deviceConfig.SampleRate = uint32(d.sampleRate)
	deviceConfig.Alsa.NoMMap = 1

	onRecvFrames := func(pOutputSample, pInputSamples []byte, framecount uint32) {
		sampleCount := int(framecount)
		if len(pInputSamples) != sampleCount*4 {
			return
		}
		samples := make([]float32, sampleCount)
		for i := 0; i < sampleCount; i++ {
			bits := uint32(pInputSamples[i*4]) | uint32(pInputSamples[i*4+1])<<8 |
				uint32(pInputSamples[i*4+2])<<16 | uint32(pInputSamples[i*4+3])<<24
			samples[i] = math.Float32frombits(bits)
		}
		onSamples(samples)
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onRecvFrames,
	})
	if err != nil {
		d.teardownContext()
		return fmt.Errorf("failed to init capture device: %w", err)
	}
	d.device = device

	if err := device.Start(); err != nil {
		device.Uninit()
		d.device = nil
		d.teardownContext()
		return fmt.Errorf("failed to start capture device: %w", err)
	}
	return nil
}

func (d *MicDevice) Stop() error {
	if d.device != nil {
		d.device.Uninit()
		d.device = nil
	}
	d.teardownContext()
	return nil
}

func (d *MicDevice) teardownContext() {
	if d.ctx != nil {
		_ = d.ctx.Uninit()
		d.ctx.Free()
		d.ctx = nil
	}
}

// MockDevice implements Device for tests. Samples are injected with Push,
// which invokes the registered callback synchronously.
type MockDevice struct {
	mu        sync.Mutex
	onSamples func([]float32)

	StartErr error
	StopErr  error

	Started int
	Stopped int
}

func (d *MockDevice) Start(onSamples func([]float32)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.StartErr != nil {
		return d.StartErr
	}
	d.onSamples = onSamples
	d.Started++
	return nil
}

func (d *MockDevice) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Stopped++
	d.onSamples = nil
	return d.StopErr
}

// Push delivers one batch of samples as the capture thread would.
func (d *MockDevice) Push(samples []float32) {
	d.mu.Lock()
	cb := d.onSamples
	d.mu.Unlock()
	if cb != nil {
		cb(samples)
	}
}
