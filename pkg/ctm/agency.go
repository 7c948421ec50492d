package ctm

type Agency struct {
	PrimaryIdentifier string
	Name              string
}
