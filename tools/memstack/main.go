package main

import "flag"
import "fmt"
import "math/rand"
import "strconv"
import "strings"
import "time"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"
import sigar "github.com/cloudfoundry/gosigar"
import hm "github.com/dustin/go-humanize"

import "github.com/bnclabs/gomemstack/stack"

var options struct {
	blocksize int
	chunk     [2]int // min-size, max-size
	align     int
	n         int
	unwind    int
	loglevel  string
}

func argParse() {
	var chunk string

	flag.IntVar(&options.blocksize, "blocksize", 4096,
		"size of the stack's initial block")
	flag.StringVar(&chunk, "chunk", "",
		"minsize,maxsize - allocate chunks between [minsize,maxsize)")
	flag.IntVar(&options.align, "align", 8,
		"alignment for every allocation, power of 2")
	flag.IntVar(&options.n, "n", 1000000,
		"number of chunks to allocate")
	flag.IntVar(&options.unwind, "unwind", 1000,
		"roll back to the previous marker every that many allocations")
	flag.StringVar(&options.loglevel, "log", "info",
		"log level for stack components")
	flag.Parse()

	options.chunk = [2]int{64, 512}
	if chunk != "" {
		for i, field := range strings.Split(chunk, ",") {
			ln, _ := strconv.Atoi(field)
			options.chunk[i] = ln
		}
	}
}

func main() {
	argParse()
	log.SetLogger(nil, s.Settings{"log.level": options.loglevel})
	stack.LogComponents("all")

	mstack := stack.NewStack(int64(options.blocksize), nil, nil)
	defer mstack.Release()

	_, used1, _ := getsysmem()

	now, allocated := time.Now(), int64(0)
	marker := mstack.Top()
	for i := 0; i < options.n; i++ {
		if options.unwind > 0 && (i%options.unwind) == 0 {
			mstack.Unwind(marker)
			marker = mstack.Top()
		}
		size := options.chunk[0]
		if diff := options.chunk[1] - options.chunk[0]; diff > 0 {
			size += rand.Intn(diff)
		}
		mstack.Alloc(int64(size), int64(options.align))
		allocated += int64(size)
	}
	elapsed := time.Since(now)

	total, used2, free := getsysmem()
	heap, alloc, overhead := mstack.Info()

	fmt.Printf("allocated %v chunks, %v in %v\n",
		options.n, hm.Bytes(uint64(allocated)), elapsed)
	fmt.Printf("stack blocks:%v heap:%v alloc:%v overhead:%v\n",
		mstack.Blocks(), hm.Bytes(uint64(heap)), hm.Bytes(uint64(alloc)),
		hm.Bytes(uint64(overhead)))
	fmt.Printf("sysmem total:%v free:%v used:%v->%v\n",
		hm.Bytes(total), hm.Bytes(free), hm.Bytes(used1), hm.Bytes(used2))
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
