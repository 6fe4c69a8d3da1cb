package postgres

// Observer times a logical DB operation. *observability.Prom satisfies it.
type Observer interface {
	ObserveDB(op string, fn func() error) error
}

type noopObserver struct{}

func (noopObserver) ObserveDB(_ string, fn func() error) error {
	return fn()
}

func observerOrNoop(obs Observer) Observer {
	if obs == nil {
		return noopObserver{}
	}
	return obs
}
