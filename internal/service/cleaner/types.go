package cleaner

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	AlertPublisher interface {
		Publish(message string)
	}
	Metrics interface {
		ObservePass(err error, started time.Time)
		ObserveReservation(outcome string)
	}
)
