package light_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wasya-io/go-remote/app/boundary/writer"
	"github.com/wasya-io/go-remote/app/entity/core"
	"github.com/wasya-io/go-remote/app/entity/light"
)

func setupLight(t *testing.T) (*light.Light, *writer.MockMessageWriter, *core.MockLogger) {
	ctrl := gomock.NewController(t)

	mockWriter := writer.NewMockMessageWriter(ctrl)
	mockLogger := core.NewMockLogger(ctrl)
	mockLogger.EXPECT().Log("light", gomock.Any()).AnyTimes()

	return light.NewLight(mockWriter, mockLogger), mockWriter, mockLogger
}

func TestLight_DefaultsOff(t *testing.T) {
	l, _, _ := setupLight(t)

	assert.False(t, l.IsOn())
}

func TestLight_TurnOn(t *testing.T) {
	l, mockWriter, _ := setupLight(t)
	mockWriter.EXPECT().Write("Light is on\n").Return(nil)

	l.TurnOn()

	assert.True(t, l.IsOn())
}

func TestLight_TurnOff(t *testing.T) {
	l, mockWriter, _ := setupLight(t)
	gomock.InOrder(
		mockWriter.EXPECT().Write("Light is on\n").Return(nil),
		mockWriter.EXPECT().Write("Light is off\n").Return(nil),
	)

	l.TurnOn()
	l.TurnOff()

	assert.False(t, l.IsOn())
}

func TestLight_TurnOnTwiceStaysOn(t *testing.T) {
	l, mockWriter, _ := setupLight(t)
	mockWriter.EXPECT().Write("Light is on\n").Return(nil).Times(2)

	l.TurnOn()
	assert.True(t, l.IsOn())
	l.TurnOn()
	assert.True(t, l.IsOn())
}

func TestLight_WriteErrorIsLogged(t *testing.T) {
	l, mockWriter, mockLogger := setupLight(t)
	mockWriter.EXPECT().Write(gomock.Any()).Return(errors.New("broken pipe"))
	mockLogger.EXPECT().Log("error", "failed to write light state: broken pipe")

	l.TurnOn()

	assert.True(t, l.IsOn(), "state changes even when the signal cannot be written")
}
