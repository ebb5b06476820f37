package cloud

import (
	"context"

	"github.com/oldmonad/ec2Inventory/pkg/config/cloud"
)

type Instance struct {
	InstanceID   string            `json:"instance_id"`
	InstanceType string            `json:"instance_type"`
	State        string            `json:"state"`
	Tags         map[string]string `json:"tags"`
}

// Reservation groups the instances launched by a single request, in the
// order the provider returned them.
type Reservation struct {
	ReservationID string     `json:"reservation_id"`
	Instances     []Instance `json:"instances"`
}

// Report is the inventory of one region at the time of the call.
type Report struct {
	Region       string        `json:"region"`
	Reservations []Reservation `json:"reservations"`
}

func (r *Report) InstanceCount() int {
	n := 0
	for _, res := range r.Reservations {
		n += len(res.Instances)
	}
	return n
}

type CloudProvider interface {
	ListInstances(ctx context.Context, cfg cloud.ProviderConfig) (*Report, error)
}
