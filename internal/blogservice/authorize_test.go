package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeOwner(t *testing.T) {
	tests := []struct {
		name        string
		ownerID     int
		requesterID int
		wantErr     error
	}{
		{name: "owner may mutate", ownerID: 1, requesterID: 1, wantErr: nil},
		{name: "other user may not mutate", ownerID: 1, requesterID: 2, wantErr: ErrUnauthorized},
		{name: "anonymous user may not mutate", ownerID: 1, requesterID: 0, wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizeOwner(tt.ownerID, tt.requesterID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
