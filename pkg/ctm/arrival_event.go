package ctm

type ArrivalEvent struct {
	TripRef string
	StopRef string

	ArrivalTime TimeOfDay
	Sequence    int
}
