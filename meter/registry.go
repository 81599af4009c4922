// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package meter

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// This file provides a registry for gas model implementations.
//
// For a model to be selectable through a Config it needs to be registered.
// The models shipped with this package are registered by init code; extra
// named configurations may be registered by client initialization code.

// GasModelFactory is the type of a function that creates a new GasModel
// using the given context configuration.
type GasModelFactory func(config Config) (GasModel, error)

// RegisterGasModelFactory registers a new gas model implementation to be
// selectable by name. The name is not case-sensitive. An error is returned
// if a factory was bound to the same name before, or the factory is nil.
func RegisterGasModelFactory(name string, factory GasModelFactory) error {
	key := strings.ToLower(name)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	gasModelRegistryLock.Lock()
	defer gasModelRegistryLock.Unlock()
	if _, found := gasModelRegistry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	gasModelRegistry[key] = factory
	return nil
}

// GetAllRegisteredGasModels obtains the factories of all registered models.
func GetAllRegisteredGasModels() map[string]GasModelFactory {
	gasModelRegistryLock.Lock()
	defer gasModelRegistryLock.Unlock()
	return maps.Clone(gasModelRegistry)
}

// newGasModel performs a lookup for the given name (case-insensitive) in the
// registry and creates a model using the given configuration. An error is
// returned if no factory was registered under the name.
func newGasModel(name string, config Config) (GasModel, error) {
	gasModelRegistryLock.Lock()
	factory := gasModelRegistry[strings.ToLower(name)]
	gasModelRegistryLock.Unlock()
	if factory == nil {
		return nil, fmt.Errorf("gas model not found: %s", name)
	}
	return factory(config)
}

// gasModelRegistry is a global registry for GasModel factories of different
// implementations and configurations.
var gasModelRegistry = map[string]GasModelFactory{}

// gasModelRegistryLock to protect access to the registry.
var gasModelRegistryLock sync.Mutex
