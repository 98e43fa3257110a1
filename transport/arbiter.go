package transport

import (
	"log"
	"math/rand"
	"time"
)

// Tuning bounds the carrier-sense loop. The defaults are small, untuned
// constants carried over from field use; deployments with more nodes per
// channel should raise them through configuration.
type Tuning struct {
	MaxAttempts int
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

// ChannelArbiter acquires a contended channel by carrier sensing with
// randomised backoff. The medium has no central arbiter, so acquisition is
// best effort: once the attempt budget is spent the channel is simply
// reported busy and the update is the caller's to drop.
type ChannelArbiter struct {
	driver RadioDriver
	rng    *rand.Rand
	sleep  func(time.Duration)
}

// NewChannelArbiter returns an arbiter for the given radio.
func NewChannelArbiter(d RadioDriver) *ChannelArbiter {
	src := rand.NewSource(time.Now().UnixNano())
	return &ChannelArbiter{
		driver: d,
		rng:    rand.New(src),
		sleep:  time.Sleep,
	}
}

// Acquire tunes the radio to target and senses the carrier up to
// maxAttempts times, sleeping a uniformly random duration in
// [minDelay, maxDelay) after each busy sense. It returns true as soon as
// the channel is idle. The radio is left tuned to target regardless of
// outcome; restoring the node's own configuration is the caller's job.
func (a *ChannelArbiter) Acquire(target uint8, maxAttempts int, minDelay, maxDelay time.Duration) bool {
	a.driver.SetChannel(target)

	for i := 0; i < maxAttempts; i++ {
		if !a.driver.TestCarrier() {
			return true
		}

		delay := minDelay
		if maxDelay > minDelay {
			delay += time.Duration(a.rng.Int63n(int64(maxDelay - minDelay)))
		}
		log.Printf("[arbiter] channel %d is busy, waiting %s\r\n", target, delay)
		a.sleep(delay)
	}

	return false
}
