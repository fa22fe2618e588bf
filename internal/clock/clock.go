package clock

import "time"

// Clock permite inyectar el tiempo en los casos de uso (el "reloj de pared"
// con el que se escriben fulfilled_at y created_at de la recepción).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem devuelve un reloj respaldado por time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed devuelve un reloj que siempre retorna el mismo instante (para tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
