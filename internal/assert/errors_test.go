package assert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	c := CollectErrors()
	assert.NoError(t, c.Result(), "An empty Collector should report no error")

	sentinel := errors.New("boom")
	c.Add(nil).Add(sentinel).AddString("field %q is bad", "age")
	err := c.Result()
	assert.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "boom\nfield \"age\" is bad", err.Error())
}

func TestCollector_Wrapping(t *testing.T) {
	sentinel := errors.New("invalid")
	err := CollectErrors().AddString("%w: first", sentinel).AddString("%w: second", sentinel).Result()
	assert.ErrorIs(t, err, sentinel, "Wrapped sentinels should survive gathering")
	assert.Equal(t, "invalid: first\ninvalid: second", err.Error())
}
