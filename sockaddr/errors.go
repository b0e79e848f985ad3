// File: sockaddr/errors.go
// Author: solarobot <solarobot@gmail.com>

package sockaddr

import "errors"

var errUnsetAddr = errors.New("sockaddr: address is unset")
