//go:build noasm

package hwy

func detectFeatures() Features {
	return FeaturesOf()
}
