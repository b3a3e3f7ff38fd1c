package reorder

// Gate names the validation step that terminated a job. An empty gate means
// the job passed every check.
type Gate string

const (
	GateOrderNotFound          Gate = "OrderNotFound"
	GateRefundNotFound         Gate = "RefundNotFound"
	GateRefundAlreadyCancelled Gate = "RefundAlreadyCancelled"
	GateRefundAlreadyCompleted Gate = "RefundAlreadyCompleted"
	GateSkuNotInOrder          Gate = "SkuNotInOrder"
	GateNoStockAvailable       Gate = "NoStockAvailable"
	GatePartialStockAvailable  Gate = "PartialStockAvailable"
	GateCreationFailed         Gate = "CreationFailed"
)

// Folder is the terminal destination of a job file.
type Folder string

const (
	FolderDone            Folder = "done"
	FolderFailed          Folder = "failed"
	FolderRejected        Folder = "rejected"
	FolderAlreadyRefunded Folder = "already-refunded"
)

var gateFolders = map[Gate]Folder{
	GateOrderNotFound:          FolderFailed,
	GateRefundNotFound:         FolderFailed,
	GateRefundAlreadyCancelled: FolderFailed,
	GateRefundAlreadyCompleted: FolderAlreadyRefunded,
	GateSkuNotInOrder:          FolderFailed,
	GateNoStockAvailable:       FolderRejected,
	GatePartialStockAvailable:  FolderRejected,
	GateCreationFailed:         FolderFailed,
}

// Outcome is the single terminal result of one job.
type Outcome struct {
	Folder         Folder
	Gate           Gate
	NewOrderNumber string
	Skus           []string
}

func (o Outcome) Success() bool {
	return o.Gate == ""
}

func failure(gate Gate) Outcome {
	return Outcome{Folder: gateFolders[gate], Gate: gate}
}
