package tracker

import (
	"time"

	"github.com/KitchAIv1/statjam-sub000/internal/broadcast"
)

// tickLoop advances every running clock once per interval until stopped
func (s *service) tickLoop(interval time.Duration) {
	defer close(s.tickDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopTick:
			return
		case <-ticker.C:
			s.tickAll()
		}
	}
}

func (s *service) tickAll() {
	s.mu.RLock()
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	for _, sess := range sessions {
		s.tickSession(sess)
	}
}

func (s *service) tickSession(sess *session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	prior := sess.engine.State()
	if !prior.Status.IsInProgress() {
		return
	}
	state, changed, err := sess.engine.Tick()
	if err != nil || !changed {
		return
	}

	s.publish(broadcast.TypeState, state, nil)

	// The period just expired, keep storage in step with the buzzer
	if prior.ClockRunning && !state.ClockRunning {
		s.enqueue(saveGameJob(s.record(sess)))
	}
}
