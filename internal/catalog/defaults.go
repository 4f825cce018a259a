package catalog

// Built-in catalog used when no JSON files are present. Timer values are
// seconds of market availability before a listing expires.

func defaultItems() []Item {
	return []Item{
		{ItemID: 1, Name: "Wheat", Price: 5, Amount: 100, NotAvailableTimer: 60, CategoryID: 101, Weight: 10},
		{ItemID: 2, Name: "Iron Hoe", Price: 80, Amount: 5, NotAvailableTimer: 720, CategoryID: 102, Weight: 1},
		{ItemID: 3, Name: "Wood", Price: 12, Amount: 100, NotAvailableTimer: 60, CategoryID: 103, Weight: 8},
		{ItemID: 4, Name: "Sheep Wool", Price: 15, Amount: 100, NotAvailableTimer: 60, CategoryID: 104, Weight: 5},
		{ItemID: 5, Name: "Clay Pot", Price: 18, Amount: 10, NotAvailableTimer: 720, CategoryID: 105, Weight: 3},
		{ItemID: 6, Name: "Gold Necklace", Price: 1000, Amount: 1, NotAvailableTimer: 1440, CategoryID: 106, Weight: 0.5},
		{ItemID: 7, Name: "Painting", Price: 450, Amount: 3, NotAvailableTimer: 1440, CategoryID: 107, Weight: 1},
		{ItemID: 8, Name: "Iron Sword", Price: 120, Amount: 10, NotAvailableTimer: 720, CategoryID: 108, Weight: 2},
		{ItemID: 9, Name: "Silk Fabric", Price: 250, Amount: 20, NotAvailableTimer: 480, CategoryID: 109, Weight: 1},
		{ItemID: 10, Name: "Stone Block", Price: 25, Amount: 100, NotAvailableTimer: 60, CategoryID: 110, Weight: 4},
		{ItemID: 11, Name: "Apple", Price: 8, Amount: 200, NotAvailableTimer: 30, CategoryID: 111, Weight: 7},
		{ItemID: 12, Name: "Leather Boots", Price: 60, Amount: 50, NotAvailableTimer: 720, CategoryID: 112, Weight: 3},
		{ItemID: 13, Name: "Iron Ingots", Price: 40, Amount: 50, NotAvailableTimer: 480, CategoryID: 113, Weight: 5},
		{ItemID: 14, Name: "Wool Blanket", Price: 25, Amount: 25, NotAvailableTimer: 360, CategoryID: 114, Weight: 4},
		{ItemID: 15, Name: "Bronze Statue", Price: 50, Amount: 2, NotAvailableTimer: 1440, CategoryID: 115, Weight: 1},
		{ItemID: 16, Name: "Leather Armor", Price: 180, Amount: 5, NotAvailableTimer: 720, CategoryID: 116, Weight: 2},
		{ItemID: 17, Name: "Silk Scarf", Price: 90, Amount: 2, NotAvailableTimer: 480, CategoryID: 117, Weight: 1},
		{ItemID: 18, Name: "Bread", Price: 10, Amount: 150, NotAvailableTimer: 60, CategoryID: 118, Weight: 7},
		{ItemID: 19, Name: "Silver Ring", Price: 300, Amount: 5, NotAvailableTimer: 1440, CategoryID: 119, Weight: 1},
		{ItemID: 20, Name: "Fishing Rod", Price: 20, Amount: 1, NotAvailableTimer: 360, CategoryID: 120, Weight: 3},
		{ItemID: 21, Name: "Copper Ore", Price: 15, Amount: 20, NotAvailableTimer: 60, CategoryID: 121, Weight: 6},
		{ItemID: 22, Name: "Iron Nails", Price: 5, Amount: 50, NotAvailableTimer: 60, CategoryID: 122, Weight: 9},
		{ItemID: 23, Name: "Glass Vase", Price: 45, Amount: 20, NotAvailableTimer: 720, CategoryID: 123, Weight: 3},
		{ItemID: 24, Name: "Silver Bracelet", Price: 320, Amount: 5, NotAvailableTimer: 1440, CategoryID: 124, Weight: 1},
		{ItemID: 25, Name: "Marble Sculpture", Price: 950, Amount: 2, NotAvailableTimer: 1440, CategoryID: 125, Weight: 0.5},
		{ItemID: 26, Name: "Pottery Set", Price: 35, Amount: 10, NotAvailableTimer: 720, CategoryID: 126, Weight: 3},
		{ItemID: 27, Name: "Tea Leaves", Price: 7, Amount: 100, NotAvailableTimer: 30, CategoryID: 127, Weight: 6},
		{ItemID: 28, Name: "Bronze Shield", Price: 230, Amount: 1, NotAvailableTimer: 720, CategoryID: 128, Weight: 2},
		{ItemID: 29, Name: "Gold Coin", Price: 650, Amount: 50, NotAvailableTimer: 1440, CategoryID: 129, Weight: 1},
		{ItemID: 30, Name: "Cotton Cloth", Price: 12, Amount: 100, NotAvailableTimer: 60, CategoryID: 130, Weight: 6},
		{ItemID: 31, Name: "Honey", Price: 10, Amount: 100, NotAvailableTimer: 30, CategoryID: 131, Weight: 7},
		{ItemID: 32, Name: "Iron Pickaxe", Price: 140, Amount: 10, NotAvailableTimer: 720, CategoryID: 132, Weight: 3},
		{ItemID: 33, Name: "Cheese", Price: 12, Amount: 100, NotAvailableTimer: 30, CategoryID: 133, Weight: 6},
		{ItemID: 34, Name: "Grapes", Price: 8, Amount: 100, NotAvailableTimer: 30, CategoryID: 134, Weight: 7},
		{ItemID: 35, Name: "Carrot", Price: 7, Amount: 150, NotAvailableTimer: 30, CategoryID: 135, Weight: 7},
		{ItemID: 36, Name: "Salt", Price: 15, Amount: 150, NotAvailableTimer: 30, CategoryID: 136, Weight: 7},
	}
}

func defaultCategories() []Category {
	return []Category{
		{CategoryID: 101, Name: "Wheat", Description: "A staple crop used to make bread and other food products.", DefaultPrice: 3, Type: "Essentials", StackNumber: 100},
		{CategoryID: 102, Name: "Iron Hoe", Description: "A basic farming tool used to till the soil.", DefaultPrice: 80, Type: "Tools", StackNumber: 10},
		{CategoryID: 103, Name: "Wood", Description: "A versatile material used for building and crafting.", DefaultPrice: 12, Type: "Materials", StackNumber: 500},
		{CategoryID: 104, Name: "Sheep Wool", Description: "Wool obtained from sheep, used in making clothes and textiles.", DefaultPrice: 15, Type: "Materials", StackNumber: 100},
		{CategoryID: 105, Name: "Clay Pot", Description: "A simple clay pot used for storing grains and liquids.", DefaultPrice: 18, Type: "Goods", StackNumber: 50},
		{CategoryID: 106, Name: "Gold Necklace", Description: "A luxurious gold necklace adorned with precious gems.", DefaultPrice: 1000, Type: "Luxury", StackNumber: 1},
		{CategoryID: 107, Name: "Painting", Description: "A beautiful piece of art created by a famous artist.", DefaultPrice: 450, Type: "Arts", StackNumber: 5},
		{CategoryID: 108, Name: "Iron Sword", Description: "A sturdy sword forged from iron, used for combat.", DefaultPrice: 120, Type: "Tools", StackNumber: 10},
		{CategoryID: 109, Name: "Silk Fabric", Description: "Luxurious fabric made from silk, used in high-end clothing.", DefaultPrice: 250, Type: "Luxury", StackNumber: 20},
		{CategoryID: 110, Name: "Stone Block", Description: "A solid block of stone used for construction.", DefaultPrice: 25, Type: "Materials", StackNumber: 100},
		{CategoryID: 111, Name: "Apple", Description: "A fresh and healthy fruit.", DefaultPrice: 8, Type: "Essentials", StackNumber: 200},
		{CategoryID: 112, Name: "Leather Boots", Description: "Boots made of durable leather for protection.", DefaultPrice: 60, Type: "Goods", StackNumber: 50},
		{CategoryID: 113, Name: "Iron Ingots", Description: "Refined iron ready for crafting and forging.", DefaultPrice: 40, Type: "Materials", StackNumber: 200},
		{CategoryID: 114, Name: "Wool Blanket", Description: "A cozy blanket made from sheep wool.", DefaultPrice: 25, Type: "Goods", StackNumber: 25},
		{CategoryID: 115, Name: "Bronze Statue", Description: "A detailed bronze statue of historical importance.", DefaultPrice: 500, Type: "Arts", StackNumber: 2},
		{CategoryID: 116, Name: "Leather Armor", Description: "Armor made of tough leather for protection in battle.", DefaultPrice: 180, Type: "Tools", StackNumber: 5},
		{CategoryID: 117, Name: "Silk Scarf", Description: "A luxurious scarf made from fine silk.", DefaultPrice: 90, Type: "Luxury", StackNumber: 10},
		{CategoryID: 118, Name: "Bread", Description: "A staple food made from wheat.", DefaultPrice: 10, Type: "Essentials", StackNumber: 150},
		{CategoryID: 119, Name: "Silver Ring", Description: "A fine ring made from silver.", DefaultPrice: 300, Type: "Luxury", StackNumber: 5},
		{CategoryID: 120, Name: "Fishing Rod", Description: "A simple tool for catching fish.", DefaultPrice: 70, Type: "Tools", StackNumber: 15},
		{CategoryID: 121, Name: "Copper Ore", Description: "Raw copper ore ready for smelting.", DefaultPrice: 15, Type: "Materials", StackNumber: 300},
		{CategoryID: 122, Name: "Iron Nails", Description: "Nails made from iron, used in construction.", DefaultPrice: 5, Type: "Materials", StackNumber: 1000},
		{CategoryID: 123, Name: "Glass Vase", Description: "A delicate vase made from glass.", DefaultPrice: 45, Type: "Goods", StackNumber: 20},
		{CategoryID: 124, Name: "Silver Bracelet", Description: "A beautiful silver bracelet with intricate designs.", DefaultPrice: 320, Type: "Luxury", StackNumber: 5},
		{CategoryID: 125, Name: "Marble Sculpture", Description: "A finely crafted marble sculpture.", DefaultPrice: 950, Type: "Arts", StackNumber: 2},
		{CategoryID: 126, Name: "Pottery Set", Description: "A set of handcrafted pottery pieces.", DefaultPrice: 35, Type: "Goods", StackNumber: 10},
		{CategoryID: 127, Name: "Tea Leaves", Description: "Freshly harvested tea leaves for brewing.", DefaultPrice: 7, Type: "Essentials", StackNumber: 100},
		{CategoryID: 128, Name: "Bronze Shield", Description: "A shield made from bronze, used for protection in battle.", DefaultPrice: 230, Type: "Tools", StackNumber: 8},
		{CategoryID: 129, Name: "Gold Coin", Description: "A rare gold coin from an ancient civilization.", DefaultPrice: 450, Type: "Luxury", StackNumber: 50},
		{CategoryID: 130, Name: "Cotton Cloth", Description: "Soft cloth made from cotton, used in clothing.", DefaultPrice: 12, Type: "Materials", StackNumber: 500},
		{CategoryID: 131, Name: "Honey", Description: "Sweet and natural honey from bees.", DefaultPrice: 10, Type: "Goods", StackNumber: 100},
		{CategoryID: 132, Name: "Iron Pickaxe", Description: "A sturdy pickaxe used for mining.", DefaultPrice: 140, Type: "Tools", StackNumber: 10},
		{CategoryID: 133, Name: "Cheese", Description: "A delicious dairy product made from milk.", DefaultPrice: 12, Type: "Essentials", StackNumber: 100},
		{CategoryID: 134, Name: "Grapes", Description: "Freshly picked grapes, used for making wine and juice.", DefaultPrice: 8, Type: "Essentials", StackNumber: 200},
		{CategoryID: 135, Name: "Carrot", Description: "A crunchy vegetable packed with nutrients.", DefaultPrice: 7, Type: "Essentials", StackNumber: 150},
		{CategoryID: 136, Name: "Salt", Description: "No one will survive without salt, and purchase make it easier to stay alive.", DefaultPrice: 15, Type: "Essentials", StackNumber: 150},
	}
}
