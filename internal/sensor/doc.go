// Package sensor reads DS18B20-family one-wire thermometers through the
// kernel's w1-therm sysfs interface.
//
// # Filesystem Layout
//
// The w1 bus driver exposes one directory per slave under a base directory
// (default /sys/bus/w1/devices). Thermometers share the family prefix "28-".
// Each directory holds a w1_slave file with two lines:
//
//	72 01 4b 46 7f ff 0e 10 57 : crc=57 YES
//	72 01 4b 46 7f ff 0e 10 57 t=23125
//
// The first line ends with YES once the conversion is usable. The second line
// carries the temperature in milli-degrees Celsius after "t=".
//
// # Components
//
//   - Activate: loads the host drivers and the w1-gpio / w1-therm modules
//   - Discover: lists device directories matching the family prefix
//   - Reader: reads one sample, waiting for the ready marker
//
// # Readiness
//
// Reader.Read re-reads the file every RetryInterval until the first line ends
// in YES. The wait stops when the context is cancelled or ReadyTimeout elapses,
// in which case ErrNotReady is returned. A zero ReadyTimeout waits until the
// context is done.
//
// # Soft Failures
//
// A second line without a "t=" marker produces an invalid Reading and a nil
// error. Missing files, short samples and unparsable numbers are errors.
package sensor
