package module

import (
	"devgate/internal/services/users/domain"
)

// Ports exposes the users service to other modules
type Ports struct {
	Users domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
