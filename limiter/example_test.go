package limiter_test

import (
	"fmt"
	"time"

	"github.com/web-frontend-engineering/web-library/clock"
	"github.com/web-frontend-engineering/web-library/limiter"
)

func ExampleDebounce() {
	c := clock.NewFake(time.Unix(0, 0))

	save := limiter.Debounce(func(doc string) {
		fmt.Println("saved", doc)
	}, 100*time.Millisecond, limiter.WithClock(c))

	save("draft 1")
	save("draft 2")
	save("draft 3")

	c.Advance(time.Second)
	// Output: saved draft 3
}

func ExampleThrottle() {
	c := clock.NewFake(time.Unix(0, 0))

	scroll := limiter.Throttle(func(y int) {
		fmt.Println("scroll", y)
	}, 100*time.Millisecond, limiter.WithClock(c))

	for y := 0; y < 5; y++ {
		scroll(y * 10)
		c.Advance(40 * time.Millisecond)
	}
	// Output:
	// scroll 0
	// scroll 30
}
