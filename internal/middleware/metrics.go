package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "friender_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// FriendRequestsTotal counts friend-request outcomes by transition.
	FriendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "friender_friend_requests_total",
		Help: "Total friend request transitions by outcome",
	}, []string{"outcome"})

	// MessagesSentTotal counts direct messages persisted.
	MessagesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "friender_messages_sent_total",
		Help: "Total direct messages persisted",
	})
)
