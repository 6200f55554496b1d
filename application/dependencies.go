// Package application wires the shared collaborators every use case needs.
package application

import (
	"time"

	"github.com/muhammadheryan/farm-portal/cmd/config"
	animalrepo "github.com/muhammadheryan/farm-portal/repository/animal"
	healthrecordrepo "github.com/muhammadheryan/farm-portal/repository/healthrecord"
	redisrepo "github.com/muhammadheryan/farm-portal/repository/redis"
	txrepo "github.com/muhammadheryan/farm-portal/repository/tx"
	userrepo "github.com/muhammadheryan/farm-portal/repository/user"
	"github.com/muhammadheryan/farm-portal/thirdparty/rabbitmq"
	"github.com/muhammadheryan/farm-portal/utils/metrics"
)

// Dependencies is built once in main and handed to every application
// service. Publisher and Metrics may be nil.
type Dependencies struct {
	Config           *config.Config
	TxRepo           txrepo.TxRepository
	UserRepo         userrepo.UserRepository
	AnimalRepo       animalrepo.AnimalRepository
	HealthRecordRepo healthrecordrepo.HealthRecordRepository
	RedisRepo        redisrepo.Repository
	Publisher        rabbitmq.NotificationPublisher
	Metrics          *metrics.Metrics
	Now              func() time.Time
}

// Clock returns Now, defaulting to UTC wall time.
func (d *Dependencies) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return func() time.Time { return time.Now().UTC() }
}
