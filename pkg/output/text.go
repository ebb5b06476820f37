package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/oldmonad/ec2Inventory/pkg/cloud"
)

// RenderText writes one block per reservation:
//
//	Reservation ID: r-1
//		Instance ID: i-1
//		Instance Type: t2.micro
//		Instance State: running
//		Instance Tags:
//			Key: Name - Value: web
func RenderText(w io.Writer, report *cloud.Report) error {
	bw := bufio.NewWriter(w)

	for _, res := range report.Reservations {
		fmt.Fprintf(bw, "Reservation ID: %s\n", res.ReservationID)
		for _, inst := range res.Instances {
			fmt.Fprintf(bw, "\tInstance ID: %s\n", inst.InstanceID)
			fmt.Fprintf(bw, "\tInstance Type: %s\n", inst.InstanceType)
			fmt.Fprintf(bw, "\tInstance State: %s\n", inst.State)
			fmt.Fprintln(bw, "\tInstance Tags:")
			for _, k := range sortedTagKeys(inst.Tags) {
				fmt.Fprintf(bw, "\t\tKey: %s - Value: %s\n", k, inst.Tags[k])
			}
		}
	}

	return bw.Flush()
}
