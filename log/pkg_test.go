package log

import "time"

var testTime = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
