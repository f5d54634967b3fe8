package client

import "errors"

var ErrNilDependency = errors.New("client app requires services and ui")
