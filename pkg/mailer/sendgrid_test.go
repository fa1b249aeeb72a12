package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSendGridMailerWithoutKey(t *testing.T) {
	m := NewSendGridMailer("", "BayPro", "orders@partsbaypro.com")
	assert.Nil(t, m)
	// The nil must survive the interface type, not just the pointer.
	assert.True(t, m == nil)
}

func TestNewSendGridMailerWithKey(t *testing.T) {
	m := NewSendGridMailer("SG.test-key", "BayPro", "orders@partsbaypro.com")
	assert.NotNil(t, m)
}
