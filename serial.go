// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import "code.hybscloud.com/atomix"

// Serial identifies a pipe or a connection.
// Both halves of a pipe share one serial.
type Serial = uint32

// serials is the process-wide source of serial numbers.
var serials atomix.Uint32

func nextSerial() Serial {
	return serials.Add(1)
}
