package billing

import (
	"fmt"
	"os"
)

type FactoryResult struct {
	Driver   string
	Provider Provider
}

func FromEnv() (FactoryResult, error) {
	driver := os.Getenv("BILLING_DRIVER")
	if driver == "" {
		driver = "stripe"
	}

	switch driver {
	case "stripe":
		key := os.Getenv("STRIPE_SECRET_KEY")
		if key == "" {
			return FactoryResult{}, fmt.Errorf("billing config missing: STRIPE_SECRET_KEY required")
		}
		return FactoryResult{Driver: "stripe", Provider: NewStripe(key)}, nil

	case "mock":
		// Local development without a catalog account.
		return FactoryResult{Driver: "mock", Provider: NewMock()}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown BILLING_DRIVER: %s", driver)
	}
}
