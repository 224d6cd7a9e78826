package config

import "fmt"

const (
	ipcTitle  = "Производительность IPC методов (Файл %s)"
	ipcXLabel = "IPC методы"
	ipcYLabel = "Время выполнения (секунды)"
	seconds   = "с"
)

var (
	ipcMethods = []string{"SHM", "MSG", "FIFO"}
	palette    = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4"}
)

func intp(v int) *int {
	return &v
}

// ipcChart is the transfer time of one file size through shared memory,
// message queues and FIFOs. Precision and label offset follow the
// magnitude of the timings.
func ipcChart(size string, values []float64, decimals int, offset float64) Chart {
	return Chart{
		Key:      "ipc_" + size,
		Title:    fmt.Sprintf(ipcTitle, size),
		XLabel:   ipcXLabel,
		YLabel:   ipcYLabel,
		Output:   "ipc_" + size + ".png",
		Labels:   ipcMethods,
		Values:   values,
		Colors:   palette[:3],
		Decimals: intp(decimals),
		Suffix:   seconds,
		Offset:   offset,
	}
}

// Default returns the built-in batch: IPC timings for 8KB, 4MB and 2GB files
// and the thread scaling of the parallel computation.
func Default() *Batch {
	return &Batch{Charts: []Chart{
		ipcChart("8KB", []float64{0.000326, 0.000363, 0.000201}, 6, 0.00005),
		ipcChart("4MB", []float64{0.011860, 0.008808, 0.011780}, 6, 0.001),
		ipcChart("2GB", []float64{2.082411, 3.004880, 3.104620}, 3, 0.1),
		{
			Key:    "threads",
			Title:  "Зависимость времени выполнения от количества потоков",
			XLabel: "Количество потоков",
			YLabel: "Время выполнения (с)",
			Output: "graph.png",
			Labels: []string{"1", "4", "9", "16"},
			Values: []float64{0.355299, 0.278737, 0.179058, 0.118607},
			Colors: palette,
			Suffix: seconds,
			Offset: 0.005,
			Width:  14,
			Height: 8,
		},
	}}
}
