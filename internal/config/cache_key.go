package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// WeeklyViewKey returns the cache key for the rendered weekly timetable snapshot.
func (r *CacheKeyStruct) WeeklyViewKey() string {
	return "timetable:view:weekly"
}

// RefreshQueueKey returns the Redis list the snapshot worker consumes; every
// timetable mutation pushes a token onto it.
func (r *CacheKeyStruct) RefreshQueueKey() string {
	return "timetable:refresh_queue"
}

// EventsChannel returns the Redis PubSub channel carrying timetable change
// events for WebSocket fanout.
func (r *CacheKeyStruct) EventsChannel() string {
	return "timetable:events"
}

var CacheKey = NewCacheKeyStruct()
