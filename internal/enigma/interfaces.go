package enigma

// Reloader reloads the receiver's channel configuration
type Reloader interface {
	ReloadServiceList() error
	ReloadBouquets() error
}
