// Package container wires the application with samber/do. Each *Package
// function registers lazy providers; nothing connects until first invoked.
package container

import "github.com/samber/do"

// RegisterPackages registers every package the HTTP server needs. Options
// must already be provided.
func RegisterPackages(i *do.Injector) {
	LoggerPackage(i)
	RedisPackage(i)
	StoragePackage(i)
	HistoryPackage(i)
	SettingsPackage(i)
	ShortLinkPackage(i)
	GoChannelPackage(i)
	PublisherGroupPackage(i)
	AnalyticsPackage(i)
	ConsumerGroupPackage(i)
	SessionPackage(i)
	HTTPPackage(i)
}
