package geos

// Test hooks into the live-handle accounting.

func LiveContexts() int64 { return liveContexts.Load() }

func LiveGeoms() int64 { return liveGeoms.Load() }
