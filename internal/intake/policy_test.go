package intake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	base := Submission{
		Name:    "Asha",
		Email:   "a@x.com",
		Phone:   "999",
		Message: "Need a loan",
	}

	tests := []struct {
		name    string
		policy  Policy
		mutate  func(*Submission)
		wantErr bool
	}{
		{
			name:   "complete submission passes default policy",
			policy: Policy{},
		},
		{
			name:    "missing name fails",
			policy:  Policy{},
			mutate:  func(s *Submission) { s.Name = "" },
			wantErr: true,
		},
		{
			name:    "missing email fails",
			policy:  Policy{},
			mutate:  func(s *Submission) { s.Email = "" },
			wantErr: true,
		},
		{
			name:   "phone alone satisfies default policy",
			policy: Policy{},
			mutate: func(s *Submission) { s.Message = "" },
		},
		{
			name:   "message alone satisfies default policy",
			policy: Policy{},
			mutate: func(s *Submission) { s.Phone = "" },
		},
		{
			name:    "neither phone nor message fails default policy",
			policy:  Policy{},
			mutate:  func(s *Submission) { s.Phone, s.Message = "", "" },
			wantErr: true,
		},
		{
			name:    "missing phone fails when phone is required",
			policy:  Policy{RequirePhone: true},
			mutate:  func(s *Submission) { s.Phone = "" },
			wantErr: true,
		},
		{
			name:    "missing message fails when message is required",
			policy:  Policy{RequireMessage: true},
			mutate:  func(s *Submission) { s.Message = "" },
			wantErr: true,
		},
		{
			name:   "missing message passes when only phone is required",
			policy: Policy{RequirePhone: true},
			mutate: func(s *Submission) { s.Message = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub := base
			if tt.mutate != nil {
				tt.mutate(&sub)
			}

			err := tt.policy.Validate(sub)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMissingFields)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
