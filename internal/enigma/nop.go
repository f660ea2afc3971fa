package enigma

import "log"

// NopReloader only logs; used where no receiver is reachable
type NopReloader struct{}

// ReloadServiceList logs the request
func (NopReloader) ReloadServiceList() error {
	log.Printf("Service list reload skipped (no receiver)")
	return nil
}

// ReloadBouquets logs the request
func (NopReloader) ReloadBouquets() error {
	log.Printf("Bouquet reload skipped (no receiver)")
	return nil
}
