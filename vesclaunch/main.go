// vesclaunch resolves the vesc launch graph of the x-ray vehicle and prints
// it, the equivalent ros2 command lines, or a check of its parameter files.
package main

import (
	"os"

	"github.com/xray-vehicle/vehicle-launch/launch"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		launch.DefaultLogger().Error(err)
		os.Exit(-1)
	}
}
