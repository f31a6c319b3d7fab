// Package vehicle holds the launch descriptions of the x-ray vehicle.
package vehicle

import (
	"github.com/pkg/errors"
	"github.com/xray-vehicle/vehicle-launch/launch"
)

const (
	Package          = "f1tenth_xray_vehicle_launch"
	InterfacePackage = "vesc_interface"

	VehicleParamFileArg   = "vehicle_param_file"
	InterfaceParamFileArg = "vesc_interface_param_file"

	DriverConfig        = "config/vesc/vesc_driver.param.yaml"
	InterfaceConfig     = "config/vesc/vesc_interface.param.yaml"
	InterfaceLaunchFile = "launch/vesc_interface.launch.py"

	DriverName       = "vesc_driver"
	DriverNamespace  = "vesc"
	DriverPackage    = "vesc_driver"
	DriverExecutable = "vesc_driver_node"
)

// ImuRemapping routes the driver's raw IMU output into the sensing namespace.
var ImuRemapping = launch.Remapping{From: "sensors/imu/raw", To: "/sensing/vesc/imu"}

// VescDescription declares vehicle_param_file and defers the rest of the
// graph to BuildVesc.
func VescDescription() *launch.Description {
	return launch.NewDescription(
		launch.DeclareLaunchArgument{
			Name:        VehicleParamFileArg,
			Description: "path to the vehicle parameter YAML file",
		},
		launch.OpaqueFunction{Function: BuildVesc},
	)
}

// configPath joins rel onto the share directory of this package.
func configPath(rel string) launch.Substitution {
	return launch.PathJoin{launch.FindPackageShare{Package: Package}, launch.Text(rel)}
}

// BuildVesc returns the vesc driver node followed by the vesc_interface
// inclusion. vehicle_param_file must be set in ctx. Package paths are
// performed here, so a missing package fails before any action is built.
func BuildVesc(ctx *launch.Context) ([]launch.Action, error) {
	if !ctx.HasConfiguration(VehicleParamFileArg) {
		return nil, errors.Wrapf(launch.ErrArgumentNotSet, "%q", VehicleParamFileArg)
	}

	paths, err := launch.Perform(ctx, []launch.Substitution{
		configPath(DriverConfig),
		configPath(InterfaceConfig),
		launch.PathJoin{launch.FindPackageShare{Package: InterfacePackage}, launch.Text(InterfaceLaunchFile)},
	})
	if err != nil {
		return nil, err
	}
	driverConfig, interfaceConfig, interfaceLaunch := paths[0], paths[1], paths[2]

	driver := launch.Node{
		Name:       DriverName,
		Namespace:  DriverNamespace,
		Package:    DriverPackage,
		Executable: DriverExecutable,
		Parameters: []launch.Substitution{launch.Text(driverConfig)},
		Remappings: []launch.Remapping{ImuRemapping},
	}

	include := launch.IncludeLaunchDescription{
		Source: launch.Text(interfaceLaunch),
		Arguments: []launch.Argument{
			{Name: InterfaceParamFileArg, Value: launch.Text(interfaceConfig)},
			{Name: VehicleParamFileArg, Value: launch.LaunchConfiguration{Name: VehicleParamFileArg}},
		},
	}

	return []launch.Action{driver, include}, nil
}
