// SPDX-License-Identifier: MIT

package datasets

import "errors"

// ErrUnknownDataset indicates a Lookup/Describe for a name that is not registered.
var ErrUnknownDataset = errors.New("datasets: unknown dataset")
