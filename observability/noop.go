/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package observability

import "context"

// NoOpObserver discards all events.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
