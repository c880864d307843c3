package model

import (
	"fmt"
	"sync"
	"testing"
)

func TestGetOrCreateReturnsFreshSession(t *testing.T) {
	st := NewStore()

	s := st.GetOrCreate("CA123")
	if s.CallSID != "CA123" {
		t.Errorf("CallSID = %q, want CA123", s.CallSID)
	}
	if s.CallerNumber != "" || s.Path != PathUnset || s.Intent != IntentUnset {
		t.Errorf("fresh session not empty: %+v", s)
	}
	if s.PainLevel != 0 || s.SwellingBleedingTrauma != nil || s.RecordingURL != "" {
		t.Errorf("fresh session has triage data: %+v", s)
	}
	if s.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if st.Len() != 1 {
		t.Errorf("Len = %d, want 1", st.Len())
	}
}

func TestUpdateAccumulatesFields(t *testing.T) {
	st := NewStore()

	st.Update("CA1", func(s *Session) {
		s.CallerNumber = "+15550001111"
		s.Path = PathEmergency
	})
	st.Update("CA1", func(s *Session) {
		s.PainLevel = 7
	})
	yes := true
	got := st.Update("CA1", func(s *Session) {
		s.SwellingBleedingTrauma = &yes
	})

	// Earlier fields survive later updates.
	if got.CallerNumber != "+15550001111" || got.Path != PathEmergency || got.PainLevel != 7 {
		t.Errorf("fields lost across updates: %+v", got)
	}
	if got.SwellingBleedingTrauma == nil || !*got.SwellingBleedingTrauma {
		t.Errorf("symptom flag not stored: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("UpdatedAt before CreatedAt: %+v", got)
	}
}

func TestUpdateCreatesMissingSession(t *testing.T) {
	st := NewStore()

	got := st.Update("CA-unseen", func(s *Session) {
		s.Intent = IntentBilling
	})
	if got.Intent != IntentBilling {
		t.Errorf("Intent = %q, want billing", got.Intent)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	st := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := fmt.Sprintf("CA%d", i%5)
			st.Update(sid, func(s *Session) { s.PainLevel = 1 + i%9 })
			_ = st.GetOrCreate(sid)
		}(i)
	}
	wg.Wait()

	if st.Len() != 5 {
		t.Errorf("Len = %d, want 5", st.Len())
	}
}

func TestParseIntent(t *testing.T) {
	cases := []struct {
		in   string
		want Intent
	}{
		{"appointment", IntentAppointment},
		{"billing", IntentBilling},
		{"general", IntentGeneral},
		{"emergency", IntentEmergency},
		{"", IntentUnset},
		{"bogus", IntentUnset},
	}
	for _, c := range cases {
		if got := ParseIntent(c.in); got != c.want {
			t.Errorf("ParseIntent(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
