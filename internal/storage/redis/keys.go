package redis

import "fmt"

// Key prefix for all storefront data
const keyPrefix = "topupstore"

// catalogKey returns the Redis key holding the full game catalog
func catalogKey() string {
	return fmt.Sprintf("%s:catalog", keyPrefix)
}

// directoryKey returns the Redis key holding the full member directory
func directoryKey() string {
	return fmt.Sprintf("%s:directory", keyPrefix)
}

// rememberKey returns the Redis key for a device's remembered account
func rememberKey(deviceID string) string {
	return fmt.Sprintf("%s:remember:%s", keyPrefix, deviceID)
}
