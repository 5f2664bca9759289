package messaging

import (
	"testing"

	"lineconnect/config"
	"lineconnect/internal/domain/constants"
	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/errors"

	"github.com/stretchr/testify/assert"
)

func newVerifier(env, secret string) *SignatureVerifier {
	cfg := &config.Config{Line: &config.LineConfig{}}
	cfg.Env.Env = env
	cfg.Line.Messaging.ChannelSecret = secret

	return NewSignatureVerifier(cfg).(*SignatureVerifier)
}

func TestSignatureVerifier_Verify(t *testing.T) {
	body := []byte(`{"destination":"Uxxx","events":[]}`)
	valid := SignBase64([]byte("s3cret"), body)

	tests := []struct {
		name      string
		env       string
		secret    string
		signature string
		wantErr   error
	}{
		{name: "valid signature", env: constants.EnvProduction, secret: "s3cret", signature: valid},
		{name: "tampered signature", env: constants.EnvProduction, secret: "s3cret", signature: SignBase64([]byte("other"), body), wantErr: domainerrors.ErrInvalidSignature},
		{name: "missing header in production", env: constants.EnvProduction, secret: "s3cret", signature: "", wantErr: domainerrors.ErrInvalidSignature},
		{name: "missing header in develop with secret", env: constants.EnvDevelop, secret: "s3cret", signature: "", wantErr: domainerrors.ErrInvalidSignature},
		{name: "not base64", env: constants.EnvProduction, secret: "s3cret", signature: "%%%", wantErr: domainerrors.ErrInvalidSignature},
		{name: "no secret in production fails closed", env: constants.EnvProduction, secret: "", signature: valid, wantErr: domainerrors.ErrMissingCredentials},
		{name: "no secret in staging fails closed", env: constants.EnvStaging, secret: "", signature: "", wantErr: domainerrors.ErrMissingCredentials},
		{name: "no secret in develop fails open", env: constants.EnvDevelop, secret: "", signature: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newVerifier(tt.env, tt.secret).Verify(body, tt.signature)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSignatureVerifier_BodyMustBeRaw(t *testing.T) {
	v := newVerifier(constants.EnvProduction, "s3cret")
	original := []byte(`{"events":[ ]}`)
	reencoded := []byte(`{"events":[]}`)

	assert.Error(t, v.Verify(reencoded, SignBase64([]byte("s3cret"), original)))
}
